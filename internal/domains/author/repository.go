package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the domain-store contract for authors. It is not a
// transactional participant of the registration workflow: a failed
// write here is compensated by rolling back the identity store, not
// by a shared transaction.
type Repository interface {
	// Create persists the author. Returns ErrNothingWritten when the
	// insert affects zero rows.
	Create(ctx context.Context, a *Author) error

	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)
	FindByIdentity(ctx context.Context, identityID uuid.UUID) (*Author, error)
	FetchAll(ctx context.Context) ([]Author, error)

	// FetchArticles returns the slim article projections owned by the
	// author, newest first.
	FetchArticles(ctx context.Context, authorID uuid.UUID) ([]ArticleSummary, error)

	Update(ctx context.Context, a *Author) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}
