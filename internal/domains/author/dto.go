package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// RegisterRequest carries the credentials to create an author. Photo
// is the base64-encoded display photo payload.
type RegisterRequest struct {
	Title     string `json:"title" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Photo     string `json:"photo" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("the author's title is required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("the author's email is required"),
			is.Email.Error("please provide a valid email address"),
		),
		validation.Field(&r.Phone,
			validation.Required.Error("the author's phone number is required"),
		),
		validation.Field(&r.FirstName,
			validation.Required.Error("the author's first name is required"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("the author's last name is required"),
		),
		validation.Field(&r.Photo,
			validation.Required.Error("the author's display photo is required"),
			is.Base64.Error("the display photo must be base64 encoded"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("please specify a password"),
			validation.Length(8, 128).Error("password must be at least 8 characters"),
		),
	)
}

// UpdateRequest carries a partial profile update. Empty fields keep
// their stored values; a non-empty Photo replaces the stored one.
type UpdateRequest struct {
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo     string `json:"photo"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Photo,
			validation.When(r.Photo != "",
				is.Base64.Error("the display photo must be base64 encoded"),
			),
		),
	)
}

// ApprovalRequest carries the target approval state for an admin
// transition.
type ApprovalRequest struct {
	Status Status `json:"status" binding:"required"`
}

// DTO is the public projection of an author.
type DTO struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Username     string           `json:"username,omitempty"`
	Email        string           `json:"email"`
	Status       Status           `json:"status"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	PhotoURL     string           `json:"photo_url"`
	DateModified time.Time        `json:"date_modified"`
	Articles     []ArticleSummary `json:"articles,omitempty"`
}

// ArticleSummary is the slim article projection embedded in a single
// author fetch. The article domain owns the full shape.
type ArticleSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	DateModified time.Time `json:"date_modified"`
}

// ToDTO projects an author into its public view.
func (a *Author) ToDTO() DTO {
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Username:     a.Username,
		Email:        a.Email,
		Status:       a.Status,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		PhotoURL:     a.PhotoURL,
		DateModified: a.UpdatedAt,
	}
}
