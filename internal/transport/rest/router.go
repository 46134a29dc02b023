package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nexaterminal/internal/config"
	"nexaterminal/internal/service"
	"nexaterminal/internal/transport/rest/handler"
	"nexaterminal/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	Metrics           prometheus.Gatherer
	CORS              config.CORSConfig
	Logger            *slog.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, logger)
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first so preflight requests never reach auth
	r.Use(corsMiddleware(c.CORS))
	r.Use(middleware.Logging(logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	if c.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(c.Metrics, promhttp.HandlerOpts{})).Methods("GET")
	}

	// User routes
	v1 := r.PathPrefix("/v1/health-check").Subrouter()
	v1.Use(authMW.RequireUser)

	v1.HandleFunc("/topics", assessmentHandler.Topics).Methods("GET", "OPTIONS")
	v1.HandleFunc("/{topic}/questions", assessmentHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/{topic}/assessments", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/{topic}/assessments", assessmentHandler.History).Methods("GET", "OPTIONS")
	v1.HandleFunc("/{topic}/assessments/latest", assessmentHandler.Latest).Methods("GET", "OPTIONS")
	v1.HandleFunc("/{topic}/violations/top", assessmentHandler.TopViolations).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	allowedOrigins := cfg.AllowedOrigins
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	allowedMethods := cfg.AllowedMethods
	if allowedMethods == "" {
		allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	}
	allowedHeaders := cfg.AllowedHeaders
	if allowedHeaders == "" {
		allowedHeaders = "Content-Type, Authorization"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
