package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/itsmkb/internal/db"
	"github.com/kailas-cloud/itsmkb/internal/domain"
	domknow "github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/metrics"
)

// collectionKey is the key suffix holding the whole item collection.
const collectionKey = "knowledge_items"

// Store operation names used as metric labels.
const (
	opLoad  = "load"
	opSave  = "save"
	opClear = "clear"
)

// store is the consumer interface for the item collection (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Repo keeps the item collection as one JSON array under a single key.
// It implements usecase/search.Repository and usecase/knowledge.Repository.
type Repo struct {
	store store
	key   string
}

// New creates a repository. prefix namespaces the collection key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, key: prefix + collectionKey}
}

// GetAll returns every item in store order. A missing key is an empty collection.
func (r *Repo) GetAll(ctx context.Context) ([]domknow.Item, error) {
	raw, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domknow.Item{}, nil
	}

	var items []domknow.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrCorruptData, r.key, err)
	}
	if items == nil {
		items = []domknow.Item{}
	}
	return items, nil
}

// GetByID returns domain.ErrNotFound when no item has the id.
func (r *Repo) GetByID(ctx context.Context, id string) (domknow.Item, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return domknow.Item{}, err
	}
	for i := range items {
		if items[i].ID == id {
			return items[i], nil
		}
	}
	return domknow.Item{}, fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
}

// SaveAll replaces the whole collection.
func (r *Repo) SaveAll(ctx context.Context, items []domknow.Item) error {
	if items == nil {
		items = []domknow.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	err = r.store.Set(ctx, r.key, data)
	metrics.StoreOperationsTotal.WithLabelValues(opSave, metrics.Status(err)).Inc()
	if err != nil {
		return fmt.Errorf("%w: set %s: %w", domain.ErrStoreUnavailable, r.key, err)
	}
	return nil
}

// Clear removes the collection.
func (r *Repo) Clear(ctx context.Context) error {
	err := r.store.Del(ctx, r.key)
	metrics.StoreOperationsTotal.WithLabelValues(opClear, metrics.Status(err)).Inc()
	if err != nil {
		return fmt.Errorf("%w: del %s: %w", domain.ErrStoreUnavailable, r.key, err)
	}
	return nil
}

// Size returns the byte length of the stored collection (0 when absent).
func (r *Repo) Size(ctx context.Context) (int, error) {
	raw, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}

// load returns the raw blob, or nil when the key is absent.
func (r *Repo) load(ctx context.Context) ([]byte, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, db.ErrKeyNotFound) {
		metrics.StoreOperationsTotal.WithLabelValues(opLoad, metrics.StatusOK).Inc()
		return nil, nil
	}
	metrics.StoreOperationsTotal.WithLabelValues(opLoad, metrics.Status(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", domain.ErrStoreUnavailable, r.key, err)
	}
	return raw, nil
}
