package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/itsmkb/internal/domain"
	domknow "github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
)

// Info summarises the stored collection.
type Info struct {
	Items int    `json:"items"`
	Bytes int    `json:"bytes"`
	Size  string `json:"size"`
}

// Service manages the lifecycle of knowledge items.
type Service struct {
	repo       Repository
	classifier Classifier
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// New creates a knowledge service.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithAutoClassify fills the ITSM type of items saved without one.
func (s *Service) WithAutoClassify(c Classifier) *Service {
	s.classifier = c
	return s
}

// Save creates or replaces an item. An empty ID creates a new item with a
// generated ID and creation time; UpdatedAt is always refreshed.
func (s *Service) Save(ctx context.Context, item domknow.Item) (domknow.Item, error) {
	if err := item.Validate(); err != nil {
		return domknow.Item{}, err
	}

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return domknow.Item{}, fmt.Errorf("load items: %w", err)
	}

	item = item.Clone()
	ts := s.timestamp()
	idx := -1
	if item.ID == "" {
		item.ID = s.newID()
	} else {
		idx = indexOf(items, item.ID)
	}
	if item.CreatedAt == "" {
		item.CreatedAt = ts
		if idx >= 0 && items[idx].CreatedAt != "" {
			item.CreatedAt = items[idx].CreatedAt
		}
	}
	item.UpdatedAt = ts

	if item.ITSMType == "" && s.classifier != nil {
		res := s.classifier.Classify(item.Title, item.Content)
		item.ITSMType = res.ITSMType
		s.logger.Debug("Item auto-classified",
			zap.String("id", item.ID),
			zap.String("itsm_type", string(res.ITSMType)),
			zap.Float64("confidence", res.Confidence),
		)
	}

	if idx >= 0 {
		items[idx] = item
	} else {
		items = append(items, item)
	}
	if err := s.repo.SaveAll(ctx, items); err != nil {
		return domknow.Item{}, fmt.Errorf("save items: %w", err)
	}

	s.logger.Info("Item saved",
		zap.String("id", item.ID),
		zap.Bool("created", idx < 0),
	)
	return item, nil
}

// Delete removes an item. Returns domain.ErrNotFound when the id is unknown.
func (s *Service) Delete(ctx context.Context, id string) error {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	items = append(items[:idx], items[idx+1:]...)
	if err := s.repo.SaveAll(ctx, items); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	s.logger.Info("Item deleted", zap.String("id", id))
	return nil
}

// Import replaces the collection with the JSON array read from r.
// Items without an ID get a generated one; a missing CreatedAt is the import
// time and a missing UpdatedAt copies CreatedAt. Returns the number of items imported.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return 0, fmt.Errorf("%w: decode import: %w", domain.ErrInvalidInput, err)
	}
	if len(raw) == 0 || raw[0] != '[' {
		return 0, fmt.Errorf("%w: import data must be a JSON array", domain.ErrInvalidInput)
	}
	var items []domknow.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, fmt.Errorf("%w: decode items: %w", domain.ErrInvalidInput, err)
	}
	ts := s.timestamp()
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = s.newID()
		}
		if items[i].CreatedAt == "" {
			items[i].CreatedAt = ts
		}
		if items[i].UpdatedAt == "" {
			items[i].UpdatedAt = items[i].CreatedAt
		}
	}

	if err := s.repo.SaveAll(ctx, items); err != nil {
		return 0, fmt.Errorf("save items: %w", err)
	}
	s.logger.Info("Items imported", zap.Int("count", len(items)))
	return len(items), nil
}

// Export writes the collection to w as indented JSON.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	return nil
}

// Clear removes every item.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	s.logger.Info("Knowledge base cleared")
	return nil
}

// Info reports the item count and stored size.
func (s *Service) Info(ctx context.Context) (Info, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("load items: %w", err)
	}
	n, err := s.repo.Size(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("stored size: %w", err)
	}
	return Info{Items: len(items), Bytes: n, Size: FormatBytes(n)}, nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(domknow.TimeLayout)
}

func indexOf(items []domknow.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
