package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/itsmkb/internal/domain/search/query"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/result"
	"github.com/kailas-cloud/itsmkb/internal/metrics"
)

// Operation names used in logs and metric labels.
const (
	opSearch      = "search"
	opAdvanced    = "advanced_search"
	opFacets      = "facets"
	opSuggestions = "suggestions"
	opSimilar     = "similar"
)

// Engine defaults.
const (
	DefaultSuggestionLimit = 5
	DefaultSimilarLimit    = 5
)

// Config tunes the engine.
type Config struct {
	Defaults        request.Defaults
	SuggestionLimit int
	SimilarLimit    int
}

// Service searches, facets and compares knowledge items.
// Public operations never return errors: failures become an empty result
// carrying the error message, and are logged.
type Service struct {
	repo   Repository
	cfg    Config
	logger *zap.Logger
}

// New creates a search service.
func New(repo Repository, cfg Config, logger *zap.Logger) *Service {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = DefaultSuggestionLimit
	}
	if cfg.SimilarLimit <= 0 {
		cfg.SimilarLimit = DefaultSimilarLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, cfg: cfg, logger: logger}
}

// Search runs the pipeline: full-text match and rank, filters, sort, count, paginate.
func (s *Service) Search(ctx context.Context, req request.Request) result.Page {
	return s.search(ctx, opSearch, req)
}

// AdvancedSearch parses a structured query string such as
// "tag:apache AND type:Incident" and runs it with default sorting.
func (s *Service) AdvancedSearch(ctx context.Context, q string) result.Page {
	return s.search(ctx, opAdvanced, query.Parse(q).Request())
}

func (s *Service) search(ctx context.Context, op string, req request.Request) (page result.Page) {
	start := time.Now()
	req = req.Normalize(s.cfg.Defaults)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s panicked: %v", op, r)
			page = result.Failed(req.Limit, req.Offset, err)
			s.observe(op, start, err)
			return
		}
		var err error
		if page.Error != "" {
			err = errors.New(page.Error)
		}
		s.observe(op, start, err)
		if err == nil {
			metrics.SearchResults.Observe(float64(page.Total))
			s.logger.Debug("Search completed",
				zap.String("operation", op),
				zap.Int("total", page.Total),
				zap.Int("returned", len(page.Items)),
				zap.Duration("duration", time.Since(start)),
			)
		}
	}()

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return result.Failed(req.Limit, req.Offset, fmt.Errorf("load items: %w", err))
	}

	scored := rank(items, req)
	f := req.Filter()
	if !f.IsEmpty() {
		kept := scored[:0]
		for i := range scored {
			if f.Matches(&scored[i].Item) {
				kept = append(kept, scored[i])
			}
		}
		scored = kept
	}
	sortItems(scored, req.SortBy, req.SortOrder)

	return result.Paginate(scored, req.Limit, req.Offset)
}

// observe records metrics for a public operation and logs failures.
func (s *Service) observe(op string, start time.Time, err error) {
	metrics.SearchDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.SearchRequestsTotal.WithLabelValues(op, metrics.Status(err)).Inc()
	if err != nil {
		s.logger.Error("Search operation failed",
			zap.String("operation", op),
			zap.Error(err),
		)
	}
}
