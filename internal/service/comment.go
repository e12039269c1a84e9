package service

import (
	"context"
	"errors"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/blogify/blog-service/internal/model"
	"github.com/blogify/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateCommentRequest) (*model.FullComment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	comment := model.Comment{
		ParentID: input.ParentID,
		PostID:   postID,
		AuthorID: authorID,
		Content:  input.Content,
	}

	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		if isPgError(err, foreignKeyViolationCode) {
			return nil, ErrPostDoesNotExist
		}
		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%d): %s", authorID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, postID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}

// Delete rejects both a missing comment and someone else's comment with the
// same outcome, so callers cannot probe which comment ids exist.
func (s *commentService) Delete(ctx context.Context, commentID int64, callerID uuid.UUID) error {
	comment, err := s.repo.Postgres.Comment.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotCommentAuthor
		}
		s.logger.Sugar().Errorf("failed to find comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}
	if comment.AuthorID != callerID {
		return ErrNotCommentAuthor
	}

	if err := s.repo.Postgres.Comment.Delete(ctx, commentID); err != nil {
		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	return nil
}
