package author

import (
	"context"

	"github.com/google/uuid"

	"tsblog-backend/internal/shared/operation"
)

// Service is the author management boundary.
type Service interface {
	// Register performs the cross-store registration workflow:
	// identity, claims, photo and domain row as one logical
	// transaction with compensation on partial failure. The created
	// author starts out Pending.
	Register(ctx context.Context, req RegisterRequest) operation.Result

	// Fetch returns all authors, newest first.
	Fetch(ctx context.Context) operation.Result

	// FetchByID returns one author with its articles.
	FetchByID(ctx context.Context, id uuid.UUID) operation.Result

	// FetchSelf returns the author owned by the calling identity.
	FetchSelf(ctx context.Context, identityID uuid.UUID) operation.Result

	// Update modifies the calling identity's author profile,
	// replacing the photo when one is supplied.
	Update(ctx context.Context, identityID uuid.UUID, req UpdateRequest) operation.Result

	// UpdateStatus is the admin approval transition. Only Approved
	// and Disapproved are accepted targets; the transition itself is
	// unconditional and idempotent.
	UpdateStatus(ctx context.Context, id uuid.UUID, req ApprovalRequest) operation.Result

	// Delete removes the author and queues a best-effort delete of
	// its photo.
	Delete(ctx context.Context, id uuid.UUID) operation.Result
}
