package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateRequest carries a new article. Caption is the base64-encoded
// caption image payload; Tags are the titles to attach.
type CreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Tags        []string `json:"tags"`
	Caption     string   `json:"caption" binding:"required"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("the article's title is required"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("the article's description is required"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("the article's content is required"),
		),
		validation.Field(&r.Caption,
			validation.Required.Error("the article's caption image is required"),
			is.Base64.Error("the caption image must be base64 encoded"),
		),
	)
}

// UpdateRequest carries a partial article update. Empty fields keep
// their stored values; a non-empty Caption replaces the stored image.
type UpdateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Caption     string   `json:"caption"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Caption,
			validation.When(r.Caption != "",
				is.Base64.Error("the caption image must be base64 encoded"),
			),
		),
	)
}

// DTO is the public projection of an article, flattened with the
// owning author's display data.
type DTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Content        string    `json:"content"`
	CaptionURL     string    `json:"caption_url"`
	Tags           []string  `json:"tags"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	AuthorPhotoURL string    `json:"author_photo_url"`
	DatePublished  time.Time `json:"date_published"`
	DateModified   time.Time `json:"date_modified"`
}

// ToDTO projects an article, borrowing the author display fields from
// the caller.
func (a *Article) ToDTO(authorName, authorPhotoURL string) DTO {
	return DTO{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		Content:        a.Content,
		CaptionURL:     a.CaptionURL,
		Tags:           a.Tags,
		AuthorID:       a.AuthorID,
		AuthorName:     authorName,
		AuthorPhotoURL: authorPhotoURL,
		DatePublished:  a.CreatedAt,
		DateModified:   a.UpdatedAt,
	}
}
