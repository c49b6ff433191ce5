package tag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request carries a tag title for create and update.
type Request struct {
	Title string `json:"title" binding:"required"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("the tag's title is required"),
			validation.Length(1, 64).Error("the tag's title must be at most 64 characters"),
		),
	)
}
