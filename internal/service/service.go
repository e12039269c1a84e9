package service

import (
	"context"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/blogify/blog-service/internal/model"
	"github.com/blogify/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, postID int64, callerID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, postID int64, callerID uuid.UUID) error
	FindByID(ctx context.Context, id int64, viewer *model.SessionUser) (*model.FullPost, error)
	FindBySlug(ctx context.Context, slug string, viewer *model.SessionUser) (*model.FullPost, error)
	FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error)
}

type Comment interface {
	Create(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateCommentRequest) (*model.FullComment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	Delete(ctx context.Context, commentID int64, callerID uuid.UUID) error
}

type Like interface {
	Like(ctx context.Context, postID int64, userID uuid.UUID) (int64, error)
	Unlike(ctx context.Context, postID int64, userID uuid.UUID) (int64, error)
	IsLiked(ctx context.Context, postID int64, userID uuid.UUID) (bool, error)
}

// Session resolves an opaque credential to a user. The credential itself is
// never parsed here; the auth service owns its format and lifecycle.
type Session interface {
	Resolve(ctx context.Context, token string) (*model.SessionUser, error)
}

type Service struct {
	Post
	Comment
	Like
	Session
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Post:    newPostService(logger, repo),
		Comment: newCommentService(logger, repo),
		Like:    newLikeService(logger, repo),
		Session: newSessionService(logger, repo),
	}
}
