package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/kailas-cloud/itsmkb/internal/domain"
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
)

// Similarity weights.
const (
	sameTypeWeight     = 10
	sharedTagWeight    = 5
	sameSeverityWeight = 3
	sharedWordWeight   = 2
)

// FindSimilar returns the items most similar to the item with the given id,
// best first, excluding the item itself. An unknown id yields an empty list.
// limit <= 0 uses the configured similar limit.
func (s *Service) FindSimilar(ctx context.Context, id string, limit int) []result.ScoredItem {
	out, _ := s.Similar(ctx, id, limit)
	return out
}

// Similar is FindSimilar reporting the failure behind an empty list.
// An unknown id is not a failure. The list is never nil.
func (s *Service) Similar(ctx context.Context, id string, limit int) (out []result.ScoredItem, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", opSimilar, r)
		}
		if err != nil {
			out = []result.ScoredItem{}
		}
		s.observe(opSimilar, start, err)
	}()

	if limit <= 0 {
		limit = s.cfg.SimilarLimit
	}

	target, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return []result.ScoredItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load target: %w", err)
	}

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	targetWords := titleWords(target.Title)
	out = make([]result.ScoredItem, 0, len(items))
	for i := range items {
		if items[i].ID == id {
			continue
		}
		out = append(out, result.ScoredItem{
			Item:  items[i].Clone(),
			Score: similarity(&target, targetWords, &items[i]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// similarity scores candidate against target. Equal severities count even when both are empty.
func similarity(target *knowledge.Item, targetWords []string, candidate *knowledge.Item) float64 {
	score := 0
	if target.ITSMType == candidate.ITSMType {
		score += sameTypeWeight
	}
	shared := lo.Filter(target.Tags, func(tag string, _ int) bool { return candidate.HasTag(tag) })
	score += len(shared) * sharedTagWeight
	if target.Severity == candidate.Severity {
		score += sameSeverityWeight
	}
	score += len(lo.Intersect(targetWords, titleWords(candidate.Title))) * sharedWordWeight
	return float64(score)
}

// titleWords returns the distinct lower-cased whitespace-separated words of a title.
func titleWords(title string) []string {
	return lo.Uniq(strings.Fields(strings.ToLower(title)))
}
