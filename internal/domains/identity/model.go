package identity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a login principal: credentials plus claims, independent
// of any domain data. Created once at registration; claims are
// attached in the same transaction as the row.
type Identity struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Scope        string    `json:"scope"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claim is a named attribute attached to an identity. Authorization
// decisions match against these.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
