package dto

import "github.com/blogify/blog-service/internal/model"

type CommentResponse struct {
	Comment model.FullComment `json:"comment"`
}

type DeleteCommentResponse struct {
	Success bool `json:"success"`
}
