package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        int64     `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FullPost struct {
	Post     Post           `json:"post"`
	Author   UserSummary    `json:"author"`
	Tags     []Tag          `json:"tags"`
	Comments []*FullComment `json:"comments"`
	Likes    int64          `json:"likes"`
}

type PostListItem struct {
	Post   Post        `json:"post"`
	Author UserSummary `json:"author"`
	Tags   []Tag       `json:"tags"`
	Likes  int64       `json:"likes"`
}
