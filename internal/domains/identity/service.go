package identity

import (
	"context"

	"tsblog-backend/internal/shared/operation"
)

// Service is the identity management boundary. Like every management
// service it reports outcomes through the operation envelope, never
// through raised faults.
type Service interface {
	// Login verifies the credentials and issues a bearer token.
	Login(ctx context.Context, req LoginRequest) operation.Result

	// SeedAdmin creates the bootstrap admin principal with its claims
	// when the identity store is empty. Idempotent.
	SeedAdmin(ctx context.Context) error
}
