package service

import (
	"context"
	"errors"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/blogify/blog-service/internal/model"
	"github.com/blogify/blog-service/internal/repository"
	"github.com/blogify/blog-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post := model.Post{
		AuthorID:  authorID,
		Title:     input.Title,
		Slug:      input.Slug,
		Content:   input.Content,
		Published: input.Published,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post, utils.ParseTags(input.Tags))
	if err != nil {
		if isPgError(err, uniqueViolationCode) {
			return nil, ErrSlugTaken
		}
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) Update(ctx context.Context, postID int64, callerID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	target, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}
	if target.AuthorID != callerID {
		return nil, ErrNotPostAuthor
	}

	// Updates are full replacements, so the payload is re-validated as a whole.
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post := model.Post{
		ID:        postID,
		Title:     input.Title,
		Slug:      input.Slug,
		Content:   input.Content,
		Published: input.Published,
	}

	updatedPost, err := s.repo.Postgres.Post.Update(ctx, post, utils.ParseTags(input.Tags))
	if err != nil {
		if isPgError(err, uniqueViolationCode) {
			return nil, ErrSlugTaken
		}
		s.logger.Sugar().Errorf("failed to update post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, postID int64, callerID uuid.UUID) error {
	target, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return ErrInternal
	}
	if target.AuthorID != callerID {
		return ErrNotPostAuthor
	}

	if err := s.repo.Postgres.Post.Delete(ctx, postID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", postID, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) FindByID(ctx context.Context, id int64, viewer *model.SessionUser) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return s.loadDetail(ctx, post, viewer)
}

func (s *postService) FindBySlug(ctx context.Context, slug string, viewer *model.SessionUser) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindDetailBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", slug, err.Error())
		return nil, ErrInternal
	}

	return s.loadDetail(ctx, post, viewer)
}

// loadDetail hides unpublished posts from everyone but their author and fills
// in the post's comments and like count.
func (s *postService) loadDetail(ctx context.Context, post *model.FullPost, viewer *model.SessionUser) (*model.FullPost, error) {
	if !post.Post.Published && (viewer == nil || viewer.ID != post.Post.AuthorID) {
		return nil, ErrPostNotFound
	}

	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, post.Post.ID, 0, 0)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", post.Post.ID, err.Error())
		return nil, ErrInternal
	}

	likes, err := s.repo.Postgres.Like.Count(ctx, post.Post.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count post(%d) likes: %s", post.Post.ID, err.Error())
		return nil, ErrInternal
	}

	post.Comments = comments
	post.Likes = likes

	return post, nil
}

func (s *postService) FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error) {
	posts, err := s.repo.Postgres.Post.FindPublished(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find published posts: %s", err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error) {
	posts, err := s.repo.Postgres.Post.FindAuthorPosts(ctx, authorID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s) posts: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}
