// Package query parses structured search strings such as
// "tag:apache AND type:Incident severity:high 503".
package query

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
)

var (
	tagRe       = regexp.MustCompile(`tag:(\w+)`)
	typeRe      = regexp.MustCompile(`type:(\w+)`)
	severityRe  = regexp.MustCompile(`severity:(\w+)`)
	statusRe    = regexp.MustCompile(`status:(\w+)`)
	connectorRe = regexp.MustCompile(`\b(?:AND|OR)\b`)
)

// Parsed is the structured form of a query string.
type Parsed struct {
	Text     string
	Types    []itsm.Type
	Tags     []string
	Severity string
	Status   string
}

// Parse extracts tag:, type:, severity: and status: tokens, in that order,
// each pass operating on the remainder left by the previous one.
// Every tag: and type: occurrence is collected; for severity: and status:
// the first occurrence wins and all occurrences are stripped.
// The remaining text loses AND/OR connectors and redundant whitespace.
func Parse(s string) Parsed {
	var p Parsed

	for _, m := range tagRe.FindAllStringSubmatch(s, -1) {
		p.Tags = append(p.Tags, m[1])
	}
	s = tagRe.ReplaceAllString(s, "")

	for _, m := range typeRe.FindAllStringSubmatch(s, -1) {
		p.Types = append(p.Types, resolveType(m[1]))
	}
	s = typeRe.ReplaceAllString(s, "")

	if m := severityRe.FindStringSubmatch(s); m != nil {
		p.Severity = m[1]
		s = severityRe.ReplaceAllString(s, "")
	}

	if m := statusRe.FindStringSubmatch(s); m != nil {
		p.Status = m[1]
		s = statusRe.ReplaceAllString(s, "")
	}

	s = connectorRe.ReplaceAllString(s, "")
	p.Text = strings.Join(strings.Fields(s), " ")
	return p
}

// resolveType maps known category names case-insensitively; unknown names are
// kept verbatim so that they filter everything out.
func resolveType(raw string) itsm.Type {
	if t, err := itsm.Parse(raw); err == nil {
		return t
	}
	return itsm.Type(raw)
}

// Request converts the parsed query into a search request with default sorting.
func (p Parsed) Request() request.Request {
	return request.Request{
		Query:     p.Text,
		ITSMTypes: append([]itsm.Type(nil), p.Types...),
		Tags:      append([]string(nil), p.Tags...),
		Severity:  p.Severity,
		Status:    p.Status,
	}
}
