package article

import (
	"context"

	"github.com/google/uuid"

	"tsblog-backend/internal/shared/operation"
)

// Service is the article management boundary.
type Service interface {
	// Create publishes an article for the author owned by the calling
	// identity. Only an approved author may publish; any other status
	// is rejected as unauthorized.
	Create(ctx context.Context, identityID uuid.UUID, req CreateRequest) operation.Result

	// Fetch returns all articles, newest first.
	Fetch(ctx context.Context) operation.Result

	// FetchByID returns one article.
	FetchByID(ctx context.Context, id uuid.UUID) operation.Result

	// FetchByAuthor returns the given author's articles.
	FetchByAuthor(ctx context.Context, authorID uuid.UUID) operation.Result

	// Update modifies an article owned by the calling identity,
	// replacing the caption image when one is supplied.
	Update(ctx context.Context, identityID uuid.UUID, id uuid.UUID, req UpdateRequest) operation.Result

	// Delete removes the article and queues a best-effort delete of
	// its caption image. Admin entry point, no ownership check.
	Delete(ctx context.Context, id uuid.UUID) operation.Result

	// DeleteOwn removes an article owned by the calling identity.
	// Articles belonging to another author are rejected as
	// unauthorized.
	DeleteOwn(ctx context.Context, identityID uuid.UUID, id uuid.UUID) operation.Result
}
