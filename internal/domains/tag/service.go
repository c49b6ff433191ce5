package tag

import (
	"context"

	"github.com/google/uuid"

	"tsblog-backend/internal/shared/operation"
)

// Service is the tag management boundary.
type Service interface {
	Create(ctx context.Context, req Request) operation.Result
	Fetch(ctx context.Context) operation.Result
	FetchByID(ctx context.Context, id uuid.UUID) operation.Result
	Update(ctx context.Context, id uuid.UUID, req Request) operation.Result
	Delete(ctx context.Context, id uuid.UUID) operation.Result
}
