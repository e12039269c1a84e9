package dto

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugRegexp = regexp.MustCompile(`^[a-z0-9-]+$`)

// CreatePostRequest is the payload for both create and update: updates are
// full replacements, not partial patches, so the shape is identical.
type CreatePostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
	Tags      string `json:"tags"` // comma separated
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 0).Error("title must be at least 3 characters"),
		),
		validation.Field(&r.Slug,
			validation.Required.Error("slug is required"),
			validation.Length(3, 0).Error("slug must be at least 3 characters"),
			validation.Match(slugRegexp).Error("slug must be lowercase letters, numbers and dashes"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(10, 0).Error("content is too short"),
		),
	)
}

type GetPostsRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
