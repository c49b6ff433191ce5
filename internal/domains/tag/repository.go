package tag

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the tag persistence boundary.
type Repository interface {
	Create(ctx context.Context, t *Tag) error
	FindByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	FetchAll(ctx context.Context) ([]Tag, error)
	Update(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}
