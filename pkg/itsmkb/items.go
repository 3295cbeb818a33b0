package itsmkb

import (
	"context"
	"fmt"
	"io"
	"time"
)

// ItemService manages knowledge items.
type ItemService struct {
	svc    itemUseCase
	reader itemReader
	obs    *observer
}

// Save creates an item (empty ID) or replaces the item with the same ID.
// The stored item is returned with its ID and timestamps filled.
func (s *ItemService) Save(ctx context.Context, item Item) (_ Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("save", start, err) }()

	saved, err := s.svc.Save(ctx, toInternalItem(item))
	if err != nil {
		return Item{}, fmt.Errorf("save item: %w", err)
	}
	return fromInternalItem(saved), nil
}

// Get retrieves an item by ID.
func (s *ItemService) Get(ctx context.Context, id string) (_ Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("get", start, err) }()

	it, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("get item: %w", err)
	}
	return fromInternalItem(it), nil
}

// List returns every item in store order.
func (s *ItemService) List(ctx context.Context) (_ []Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("list", start, err) }()

	items, err := s.reader.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = fromInternalItem(it)
	}
	return out, nil
}

// Delete removes an item by ID.
func (s *ItemService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Import replaces the collection with a JSON array of items read from r.
func (s *ItemService) Import(ctx context.Context, r io.Reader) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("import", start, err) }()

	n, err := s.svc.Import(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	return n, nil
}

// Export writes the collection to w as a JSON array.
func (s *ItemService) Export(ctx context.Context, w io.Writer) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("export", start, err) }()

	if err = s.svc.Export(ctx, w); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Clear removes every item.
func (s *ItemService) Clear(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("clear", start, err) }()

	if err = s.svc.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// Info reports the item count and stored size.
func (s *ItemService) Info(ctx context.Context) (_ StorageInfo, err error) {
	start := time.Now()
	defer func() { s.obs.observe("info", start, err) }()

	info, err := s.svc.Info(ctx)
	if err != nil {
		return StorageInfo{}, fmt.Errorf("info: %w", err)
	}
	return StorageInfo{Items: info.Items, Bytes: info.Bytes, Size: info.Size}, nil
}
