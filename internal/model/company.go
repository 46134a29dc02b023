package model

import "strings"

// CompanySize is the tier that decides which penalty amounts apply
type CompanySize string

const (
	CompanyMicro  CompanySize = "micro"
	CompanySmall  CompanySize = "small"
	CompanyMedium CompanySize = "medium"
	CompanyLarge  CompanySize = "large"
)

// CompanySizes lists the tiers from smallest to largest
var CompanySizes = []CompanySize{CompanyMicro, CompanySmall, CompanyMedium, CompanyLarge}

// Valid reports whether s is one of the known tiers
func (s CompanySize) Valid() bool {
	switch s {
	case CompanyMicro, CompanySmall, CompanyMedium, CompanyLarge:
		return true
	}
	return false
}

// ParseCompanySize normalizes user input. Empty input maps to micro.
func ParseCompanySize(raw string) (CompanySize, bool) {
	s := CompanySize(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return CompanyMicro, true
	}
	return s, s.Valid()
}
