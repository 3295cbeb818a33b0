package knowledge

import (
	"context"

	domknow "github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/usecase/classify"
)

// Repository defines the storage contract of the item collection.
type Repository interface {
	GetAll(ctx context.Context) ([]domknow.Item, error)
	SaveAll(ctx context.Context, items []domknow.Item) error
	Clear(ctx context.Context) error
	Size(ctx context.Context) (int, error)
}

// Classifier assigns an ITSM category to items saved without one.
type Classifier interface {
	Classify(title, content string) classify.Result
}
