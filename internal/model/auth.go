package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims identifying the platform user a
// health check belongs to
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
