package article

import (
	"time"

	"github.com/google/uuid"
)

// Article is a published piece of writing. CaptionID references the
// caption image in object storage; Tags carry the titles of the tags
// attached through the join table.
type Article struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CaptionID   string    `json:"-"`
	CaptionURL  string    `json:"caption_url"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
