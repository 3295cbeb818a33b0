package search

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
)

// Facets counts items by ITSM type, tag, severity and status.
// A nil items slice means the whole collection. Empty values are not counted.
func (s *Service) Facets(ctx context.Context, items []knowledge.Item) (facets result.Facets) {
	start := time.Now()
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", opFacets, r)
		}
		if err != nil {
			facets = result.EmptyFacets()
			facets.Error = err.Error()
		}
		s.observe(opFacets, start, err)
	}()

	if items == nil {
		if items, err = s.repo.GetAll(ctx); err != nil {
			err = fmt.Errorf("load items: %w", err)
			return facets
		}
	}

	facets = result.EmptyFacets()
	for i := range items {
		it := &items[i]
		countNonEmpty(facets.ITSMTypes, string(it.ITSMType))
		countNonEmpty(facets.Severities, it.Severity)
		countNonEmpty(facets.Statuses, it.Status)
		for _, tag := range it.Tags {
			countNonEmpty(facets.Tags, tag)
		}
	}
	return facets
}

func countNonEmpty(m map[string]int, v string) {
	if v != "" {
		m[v]++
	}
}
