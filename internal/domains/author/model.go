package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain profile of a content creator. Exactly one
// identity owns it; the identity itself lives in the separate
// identity store and is referenced by id only.
type Author struct {
	ID         uuid.UUID `json:"id"`
	IdentityID uuid.UUID `json:"identity_id"`
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	PhotoID    string    `json:"-"`
	PhotoURL   string    `json:"photo_url"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
