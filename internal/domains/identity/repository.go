package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the identity store contract. It is the only store in
// the system with a real transaction: registration runs inside one
// and rolls it back when any later step of the workflow fails.
type Repository interface {
	// Begin opens a transaction. The returned Tx must be finished
	// with Commit or Rollback.
	Begin(ctx context.Context) (Tx, error)

	FindByID(ctx context.Context, id uuid.UUID) (*Identity, error)
	FindByUsername(ctx context.Context, username string) (*Identity, error)
	FindByEmail(ctx context.Context, email string) (*Identity, error)

	// Any reports whether the store holds at least one identity.
	// Used by the startup admin seed.
	Any(ctx context.Context) (bool, error)
}

// Tx is the transactional slice of the identity store. Writes made
// through it are invisible to other callers until Commit.
type Tx interface {
	// CreateIdentity persists the principal with its password hash.
	// Returns ErrUsernameTaken / ErrEmailTaken on unique violations.
	CreateIdentity(ctx context.Context, ident *Identity) error

	// AttachClaims stores the claim set for the identity.
	AttachClaims(ctx context.Context, identityID uuid.UUID, claims []Claim) error

	// UsernameExists checks username uniqueness inside the
	// transaction, so the collision-suffix loop sees its own writes.
	UsernameExists(ctx context.Context, username string) (bool, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
