package article

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the article persistence boundary. Tag titles travel
// with the article; the join rows are managed inside the repository.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*Article, error)
	FetchAll(ctx context.Context) ([]Article, error)
	FetchByAuthor(ctx context.Context, authorID uuid.UUID) ([]Article, error)
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id uuid.UUID) error
}
