package filter

import (
	"github.com/samber/lo"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
)

// Filter is the structured part of a search: category set, tag set, severity, status.
// Empty components match everything.
type Filter struct {
	itsmTypes []itsm.Type
	tags      []string
	severity  string
	status    string
}

// New creates a Filter. Unknown categories are kept and simply match nothing.
func New(itsmTypes []itsm.Type, tags []string, severity, status string) Filter {
	return Filter{
		itsmTypes: append([]itsm.Type(nil), itsmTypes...),
		tags:      append([]string(nil), tags...),
		severity:  severity,
		status:    status,
	}
}

// IsEmpty reports whether the filter has no conditions.
func (f Filter) IsEmpty() bool {
	return len(f.itsmTypes) == 0 && len(f.tags) == 0 && f.severity == "" && f.status == ""
}

// MatchesType applies the category condition.
func (f Filter) MatchesType(it *knowledge.Item) bool {
	return len(f.itsmTypes) == 0 || lo.Contains(f.itsmTypes, it.ITSMType)
}

// MatchesTags applies the tag condition: at least one requested tag present.
func (f Filter) MatchesTags(it *knowledge.Item) bool {
	return len(f.tags) == 0 || lo.Some(it.Tags, f.tags)
}

// MatchesSeverity applies the exact severity condition.
func (f Filter) MatchesSeverity(it *knowledge.Item) bool {
	return f.severity == "" || it.Severity == f.severity
}

// MatchesStatus applies the exact status condition.
func (f Filter) MatchesStatus(it *knowledge.Item) bool {
	return f.status == "" || it.Status == f.status
}

// Matches applies every condition.
func (f Filter) Matches(it *knowledge.Item) bool {
	return f.MatchesType(it) && f.MatchesTags(it) && f.MatchesSeverity(it) && f.MatchesStatus(it)
}
