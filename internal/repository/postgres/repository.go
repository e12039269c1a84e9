package postgres

import (
	"context"

	"github.com/blogify/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit <= 0 || *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type Post interface {
	Create(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error)
	Update(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindDetailByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindDetailBySlug(ctx context.Context, slug string) (*model.FullPost, error)
	FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.FullComment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	Delete(ctx context.Context, id int64) error
}

type Like interface {
	Create(ctx context.Context, postID int64, userID uuid.UUID) error
	Delete(ctx context.Context, postID int64, userID uuid.UUID) error
	Count(ctx context.Context, postID int64) (int64, error)
	Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error)
}

type PostgresRepository struct {
	Post
	Comment
	Like
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
		Like:    newLikeRepo(db),
	}
}
