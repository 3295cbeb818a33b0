package sorting

import "strings"

// Field is the attribute results are ordered by.
type Field string

// Sort field constants.
const (
	CreatedAt Field = "created_at"
	UpdatedAt Field = "updated_at"
	Title     Field = "title"
	ITSMType  Field = "itsm_type"
	Severity  Field = "severity"
	// Relevance keeps the full-text relevance order (or store order without a query).
	Relevance Field = "relevance"
)

// IsValid checks if the field is one of the supported values.
func (f Field) IsValid() bool {
	switch f {
	case CreatedAt, UpdatedAt, Title, ITSMType, Severity, Relevance:
		return true
	}
	return false
}

// Order is the sort direction.
type Order string

// Sort direction constants.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// IsValid checks if the order is asc or desc.
func (o Order) IsValid() bool {
	return o == Asc || o == Desc
}

// ParseOrder maps anything other than "asc" (case-insensitive) to Desc.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}
