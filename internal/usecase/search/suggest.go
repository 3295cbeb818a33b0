package search

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

// minSuggestionQuery is the shortest trimmed query that yields suggestions.
const minSuggestionQuery = 2

// Suggestions returns titles, then tags, containing q (case-insensitive),
// deduplicated in first-seen order and capped at limit.
// limit <= 0 uses the configured suggestion limit.
func (s *Service) Suggestions(ctx context.Context, q string, limit int) []string {
	out, _ := s.Suggest(ctx, q, limit)
	return out
}

// Suggest is Suggestions reporting the failure behind an empty list.
// The list is never nil.
func (s *Service) Suggest(ctx context.Context, q string, limit int) (out []string, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", opSuggestions, r)
		}
		if err != nil {
			out = []string{}
		}
		s.observe(opSuggestions, start, err)
	}()

	if utf8.RuneCountInString(strings.TrimSpace(q)) < minSuggestionQuery {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = s.cfg.SuggestionLimit
	}

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	needle := strings.ToLower(q)
	candidates := make([]string, 0, len(items))
	for i := range items {
		if strings.Contains(strings.ToLower(items[i].Title), needle) {
			candidates = append(candidates, items[i].Title)
		}
	}
	for i := range items {
		for _, tag := range items[i].Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				candidates = append(candidates, tag)
			}
		}
	}

	out = lo.Uniq(candidates)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
