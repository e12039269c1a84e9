package service

import (
	"context"

	"github.com/blogify/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type likeService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newLikeService(logger *zap.Logger, repo *repository.Repository) Like {
	return &likeService{
		logger: logger,
		repo:   repo,
	}
}

// Like is not idempotent: the storage constraint decides the winner under
// concurrency, and the loser gets ErrAlreadyLiked.
func (s *likeService) Like(ctx context.Context, postID int64, userID uuid.UUID) (int64, error) {
	if err := s.repo.Postgres.Like.Create(ctx, postID, userID); err != nil {
		if isPgError(err, uniqueViolationCode) {
			return 0, ErrAlreadyLiked
		}
		if isPgError(err, foreignKeyViolationCode) {
			return 0, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to like post(%d) by user(%s): %s", postID, userID.String(), err.Error())
		return 0, ErrInternal
	}

	return s.count(ctx, postID)
}

// Unlike deletes whatever matches; unliking a post that was never liked is a
// no-op, not an error.
func (s *likeService) Unlike(ctx context.Context, postID int64, userID uuid.UUID) (int64, error) {
	if err := s.repo.Postgres.Like.Delete(ctx, postID, userID); err != nil {
		s.logger.Sugar().Errorf("failed to unlike post(%d) by user(%s): %s", postID, userID.String(), err.Error())
		return 0, ErrInternal
	}

	return s.count(ctx, postID)
}

func (s *likeService) IsLiked(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	liked, err := s.repo.Postgres.Like.Exists(ctx, postID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check like on post(%d) by user(%s): %s", postID, userID.String(), err.Error())
		return false, ErrInternal
	}

	return liked, nil
}

func (s *likeService) count(ctx context.Context, postID int64) (int64, error) {
	count, err := s.repo.Postgres.Like.Count(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count post(%d) likes: %s", postID, err.Error())
		return 0, ErrInternal
	}

	return count, nil
}
