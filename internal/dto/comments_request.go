package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

type CreateCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("comment cannot be empty"),
		),
	)
}
