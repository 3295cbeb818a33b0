package itsm

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/itsmkb/internal/domain"
)

// Type is an ITSM category.
type Type string

// ITSM category constants, in declaration order.
const (
	Incident Type = "Incident"
	Problem  Type = "Problem"
	Change   Type = "Change"
	Release  Type = "Release"
	Request  Type = "Request"
	// Other is the fallback when no category is confident enough.
	Other Type = "Other"
)

// All returns every category in declaration order.
func All() []Type {
	return []Type{Incident, Problem, Change, Release, Request, Other}
}

// IsValid checks if the type is one of the fixed categories.
func (t Type) IsValid() bool {
	switch t {
	case Incident, Problem, Change, Release, Request, Other:
		return true
	}
	return false
}

// Parse resolves a category name case-insensitively.
func Parse(s string) (Type, error) {
	for _, t := range All() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownITSMType, s)
}

// Severity levels.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

var severityOrdinal = map[string]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// SeverityOrdinal maps a severity onto a magnitude for sorting.
// Unknown and empty severities rank 0.
func SeverityOrdinal(severity string) int {
	return severityOrdinal[severity]
}

// IsValidSeverity reports whether s is empty or one of the known levels.
func IsValidSeverity(s string) bool {
	if s == "" {
		return true
	}
	_, ok := severityOrdinal[s]
	return ok
}
