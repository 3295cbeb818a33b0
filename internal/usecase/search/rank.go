package search

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/sorting"
)

// Relevance weights.
const (
	titleWeight   = 10
	contentWeight = 5
	tagWeight     = 5
	typeWeight    = 3
)

// rank keeps items containing every query term and orders them by relevance.
// A blank query keeps every item in store order with a zero score.
func rank(items []knowledge.Item, req request.Request) []result.ScoredItem {
	if !req.HasQuery() {
		out := make([]result.ScoredItem, len(items))
		for i := range items {
			out[i] = result.ScoredItem{Item: items[i].Clone()}
		}
		return out
	}

	q := strings.ToLower(strings.TrimSpace(req.Query))
	terms := strings.Fields(q)
	out := make([]result.ScoredItem, 0, len(items))
	for i := range items {
		text := strings.ToLower(searchableText(&items[i]))
		if !lo.EveryBy(terms, func(term string) bool { return strings.Contains(text, term) }) {
			continue
		}
		out = append(out, result.ScoredItem{
			Item:  items[i].Clone(),
			Score: relevance(&items[i], text, q),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// searchableText joins the fields full-text search looks at.
func searchableText(it *knowledge.Item) string {
	return strings.Join([]string{
		it.Title,
		it.Content,
		string(it.ITSMType),
		strings.Join(it.Tags, " "),
		it.Severity,
		it.Status,
	}, " ")
}

// relevance scores an item for a lower-cased query; text is its lower-cased searchable text.
func relevance(it *knowledge.Item, text, q string) float64 {
	score := 0
	if strings.Contains(strings.ToLower(it.Title), q) {
		score += titleWeight
	}
	if strings.Contains(strings.ToLower(it.Content), q) {
		score += contentWeight
	}
	if lo.SomeBy(it.Tags, func(tag string) bool { return strings.Contains(strings.ToLower(tag), q) }) {
		score += tagWeight
	}
	if strings.Contains(strings.ToLower(string(it.ITSMType)), q) {
		score += typeWeight
	}
	score += strings.Count(text, q)
	return float64(score)
}

// sortItems orders items in place. Relevance and unknown fields leave the order untouched;
// known fields sort stably so earlier ranking survives among equal keys.
func sortItems(items []result.ScoredItem, by sorting.Field, order sorting.Order) {
	var less func(a, b *knowledge.Item) bool
	switch by {
	case sorting.CreatedAt:
		less = func(a, b *knowledge.Item) bool {
			return knowledge.ParseTime(a.CreatedAt).Before(knowledge.ParseTime(b.CreatedAt))
		}
	case sorting.UpdatedAt:
		less = func(a, b *knowledge.Item) bool {
			return knowledge.ParseTime(a.UpdatedAt).Before(knowledge.ParseTime(b.UpdatedAt))
		}
	case sorting.Title:
		less = func(a, b *knowledge.Item) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case sorting.ITSMType:
		less = func(a, b *knowledge.Item) bool {
			return strings.ToLower(string(a.ITSMType)) < strings.ToLower(string(b.ITSMType))
		}
	case sorting.Severity:
		less = func(a, b *knowledge.Item) bool {
			return itsm.SeverityOrdinal(a.Severity) < itsm.SeverityOrdinal(b.Severity)
		}
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if order == sorting.Asc {
			return less(&items[i].Item, &items[j].Item)
		}
		return less(&items[j].Item, &items[i].Item)
	})
}
