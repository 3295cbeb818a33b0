package search

import (
	"context"

	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
)

// Repository is the read side of the item store.
type Repository interface {
	// GetAll returns every item in store order.
	GetAll(ctx context.Context) ([]knowledge.Item, error)
	// GetByID returns domain.ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (knowledge.Item, error)
}
