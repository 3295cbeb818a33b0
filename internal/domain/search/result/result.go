package result

import (
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
)

// ScoredItem is an item annotated with a transient score
// (relevance for search, similarity for find-similar). The score is never persisted.
type ScoredItem struct {
	Item  knowledge.Item `json:"item"`
	Score float64        `json:"score"`
}

// Page is a search result: one page of items plus the pre-pagination total.
type Page struct {
	Items   []ScoredItem `json:"items"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit,omitempty"`
	Offset  int          `json:"offset"`
	HasMore bool         `json:"hasMore"`
	// Error carries the message of a swallowed failure; the page is empty then.
	Error string `json:"error,omitempty"`
}

// Failed builds the empty page returned when the pipeline fails.
func Failed(limit, offset int, err error) Page {
	return Page{
		Items:  []ScoredItem{},
		Limit:  limit,
		Offset: offset,
		Error:  err.Error(),
	}
}

// Paginate slices items by offset/limit. limit <= 0 returns everything.
// hasMore is true only when a limit is set and items remain past the page.
func Paginate(items []ScoredItem, limit, offset int) Page {
	total := len(items)
	p := Page{Total: total, Limit: limit, Offset: offset}

	if limit <= 0 {
		p.Items = items
		return p
	}

	start := min(max(offset, 0), total)
	end := min(start+limit, total)
	p.Items = items[start:end]
	p.HasMore = offset+limit < total
	return p
}

// ItemsOnly strips the scores.
func (p Page) ItemsOnly() []knowledge.Item {
	out := make([]knowledge.Item, len(p.Items))
	for i, si := range p.Items {
		out[i] = si.Item
	}
	return out
}

// Facets are count breakdowns of a collection used to drive filter UIs.
type Facets struct {
	ITSMTypes  map[string]int `json:"itsmTypes"`
	Tags       map[string]int `json:"tags"`
	Severities map[string]int `json:"severities"`
	Statuses   map[string]int `json:"statuses"`
	Error      string         `json:"error,omitempty"`
}

// EmptyFacets returns facets with initialised, empty maps.
func EmptyFacets() Facets {
	return Facets{
		ITSMTypes:  map[string]int{},
		Tags:       map[string]int{},
		Severities: map[string]int{},
		Statuses:   map[string]int{},
	}
}
