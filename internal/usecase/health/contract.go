package health

import (
	"context"

	domknow "github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ItemLoader reads the item collection; a failure means the stored data is unreadable.
type ItemLoader interface {
	GetAll(ctx context.Context) ([]domknow.Item, error)
}
