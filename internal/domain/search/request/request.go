package request

import (
	"strings"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/filter"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/sorting"
)

// Search parameter defaults.
const (
	DefaultSortBy    = sorting.UpdatedAt
	DefaultSortOrder = sorting.Desc
)

// Request is a search over the item collection.
// The zero value lists every item, newest update first, without pagination.
type Request struct {
	Query     string
	ITSMTypes []itsm.Type
	Tags      []string
	Severity  string
	Status    string
	// SortBy empty means the default (updated_at). Relevance keeps the
	// full-text ranking. Unknown fields leave the order untouched.
	SortBy    sorting.Field
	SortOrder sorting.Order
	// Limit <= 0 disables pagination.
	Limit  int
	Offset int
}

// Defaults holds configurable fallbacks applied by Normalize.
type Defaults struct {
	SortBy    sorting.Field
	SortOrder sorting.Order
	// MaxLimit caps Limit when > 0.
	MaxLimit int
}

// Normalize fills defaults and clamps out-of-range values. It never fails:
// malformed input degrades to documented default behaviour.
func (r Request) Normalize(d Defaults) Request {
	out := r
	out.ITSMTypes = append([]itsm.Type(nil), r.ITSMTypes...)
	out.Tags = append([]string(nil), r.Tags...)

	out.Severity = strings.TrimSpace(out.Severity)
	out.Status = strings.TrimSpace(out.Status)

	if out.SortBy == "" {
		out.SortBy = d.SortBy
		if out.SortBy == "" {
			out.SortBy = DefaultSortBy
		}
	}
	if !out.SortOrder.IsValid() {
		out.SortOrder = d.SortOrder
		if !out.SortOrder.IsValid() {
			out.SortOrder = DefaultSortOrder
		}
	}

	if out.Offset < 0 {
		out.Offset = 0
	}
	if out.Limit < 0 {
		out.Limit = 0
	}
	if d.MaxLimit > 0 && out.Limit > d.MaxLimit {
		out.Limit = d.MaxLimit
	}
	return out
}

// HasQuery reports whether the request carries non-blank free text.
func (r Request) HasQuery() bool {
	return strings.TrimSpace(r.Query) != ""
}

// Filter returns the structured filter part of the request.
func (r Request) Filter() filter.Filter {
	return filter.New(r.ITSMTypes, r.Tags, r.Severity, r.Status)
}
