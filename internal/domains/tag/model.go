package tag

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a label attachable to articles through the join table.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
