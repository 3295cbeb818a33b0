package itsmkb

import (
	"context"
	"time"
)

// SearchService searches the knowledge base. Its operations never fail:
// errors surface as empty results carrying an Error message.
type SearchService struct {
	svc searchUseCase
	obs *observer
}

// Query runs a full-text search with filters, sorting and pagination.
func (s *SearchService) Query(ctx context.Context, q SearchQuery) SearchResult {
	start := time.Now()
	res := fromPage(s.svc.Search(ctx, toInternalRequest(q)))
	s.obs.observe("search", start, errorFromMessage(res.Error))
	return res
}

// Advanced runs a structured query string such as
// "tag:apache AND type:Incident severity:high 503".
func (s *SearchService) Advanced(ctx context.Context, q string) SearchResult {
	start := time.Now()
	res := fromPage(s.svc.AdvancedSearch(ctx, q))
	s.obs.observe("advanced_search", start, errorFromMessage(res.Error))
	return res
}

// Facets counts items per category, tag, severity and status.
func (s *SearchService) Facets(ctx context.Context) Facets {
	start := time.Now()
	f := fromFacets(s.svc.Facets(ctx, nil))
	s.obs.observe("facets", start, errorFromMessage(f.Error))
	return f
}

// Suggestions returns titles and tags containing prefix. limit <= 0 uses the default of 5.
func (s *SearchService) Suggestions(ctx context.Context, prefix string, limit int) []string {
	start := time.Now()
	out, err := s.svc.Suggest(ctx, prefix, limit)
	s.obs.observe("suggestions", start, err)
	return out
}

// Similar returns the items most similar to the item with the given ID.
// An unknown ID yields no hits. limit <= 0 uses the default of 5.
func (s *SearchService) Similar(ctx context.Context, id string, limit int) []Hit {
	start := time.Now()
	out, err := s.svc.Similar(ctx, id, limit)
	s.obs.observe("similar", start, err)
	return fromScored(out)
}
