package itsmkb

import (
	"time"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/sorting"
	classifyuc "github.com/kailas-cloud/itsmkb/internal/usecase/classify"
)

func toInternalItem(it Item) knowledge.Item {
	return knowledge.Item{
		ID:        it.ID,
		ITSMType:  itsm.Type(it.Type),
		Title:     it.Title,
		Content:   it.Content,
		Tags:      append([]string(nil), it.Tags...),
		Severity:  it.Severity,
		Status:    it.Status,
		CreatedAt: formatTime(it.CreatedAt),
		UpdatedAt: formatTime(it.UpdatedAt),
	}
}

func fromInternalItem(it knowledge.Item) Item {
	return Item{
		ID:        it.ID,
		Type:      ITSMType(it.ITSMType),
		Title:     it.Title,
		Content:   it.Content,
		Tags:      append([]string(nil), it.Tags...),
		Severity:  it.Severity,
		Status:    it.Status,
		CreatedAt: knowledge.ParseTime(it.CreatedAt),
		UpdatedAt: knowledge.ParseTime(it.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(knowledge.TimeLayout)
}

func toInternalRequest(q SearchQuery) request.Request {
	types := make([]itsm.Type, len(q.Types))
	for i, t := range q.Types {
		types[i] = itsm.Type(t)
	}
	req := request.Request{
		Query:     q.Text,
		ITSMTypes: types,
		Tags:      append([]string(nil), q.Tags...),
		Severity:  q.Severity,
		Status:    q.Status,
		SortBy:    sorting.Field(q.SortBy),
		Limit:     q.Limit,
		Offset:    q.Offset,
	}
	if q.Order != "" {
		req.SortOrder = sorting.ParseOrder(q.Order)
	}
	return req
}

func fromScored(items []result.ScoredItem) []Hit {
	out := make([]Hit, len(items))
	for i, si := range items {
		out[i] = Hit{Item: fromInternalItem(si.Item), Score: si.Score}
	}
	return out
}

func fromPage(p result.Page) SearchResult {
	return SearchResult{
		Hits:    fromScored(p.Items),
		Total:   p.Total,
		HasMore: p.HasMore,
		Error:   p.Error,
	}
}

func fromFacets(f result.Facets) Facets {
	return Facets{
		Types:      f.ITSMTypes,
		Tags:       f.Tags,
		Severities: f.Severities,
		Statuses:   f.Statuses,
		Error:      f.Error,
	}
}

func fromResult(r classifyuc.Result) Classification {
	scores := make(map[ITSMType]float64, len(r.Scores))
	for t, s := range r.Scores {
		scores[ITSMType(t)] = s
	}
	return Classification{
		Type:       ITSMType(r.ITSMType),
		Confidence: r.Confidence,
		Scores:     scores,
		Reason:     r.Reason,
		Level:      classifyuc.ConfidenceLevel(r.Confidence).Level,
	}
}
