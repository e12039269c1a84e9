package dto

import "github.com/blogify/blog-service/internal/model"

type PostResponse struct {
	Post model.Post `json:"post"`
}

type GetPostResponse struct {
	Post    model.FullPost `json:"post"`
	IsLiked bool           `json:"is_liked"`
}

type DeletePostResponse struct {
	Ok bool `json:"ok"`
}

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type IsLikedResponse struct {
	Liked bool `json:"liked"`
}
