package service

import (
	"context"

	"github.com/blogify/blog-service/internal/model"
	"github.com/blogify/blog-service/internal/repository"
	"github.com/blogify/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hand-written mocks for the postgres interfaces: each method delegates to an
// optional function field, so a test only wires what it expects to be called.

type mockPostRepo struct {
	createFn           func(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error)
	updateFn           func(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error)
	deleteFn           func(ctx context.Context, id int64) error
	findByIDFn         func(ctx context.Context, id int64) (*model.Post, error)
	findDetailByIDFn   func(ctx context.Context, id int64) (*model.FullPost, error)
	findDetailBySlugFn func(ctx context.Context, slug string) (*model.FullPost, error)
	findPublishedFn    func(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error)
	findAuthorPostsFn  func(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error)
}

func (m *mockPostRepo) Create(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error) {
	return m.createFn(ctx, post, tagNames)
}

func (m *mockPostRepo) Update(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error) {
	return m.updateFn(ctx, post, tagNames)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockPostRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockPostRepo) FindDetailByID(ctx context.Context, id int64) (*model.FullPost, error) {
	return m.findDetailByIDFn(ctx, id)
}

func (m *mockPostRepo) FindDetailBySlug(ctx context.Context, slug string) (*model.FullPost, error) {
	return m.findDetailBySlugFn(ctx, slug)
}

func (m *mockPostRepo) FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error) {
	return m.findPublishedFn(ctx, limit, offset)
}

func (m *mockPostRepo) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error) {
	return m.findAuthorPostsFn(ctx, authorID, limit, offset)
}

type mockCommentRepo struct {
	createFn           func(ctx context.Context, comment model.Comment) (*model.FullComment, error)
	findByIDFn         func(ctx context.Context, id int64) (*model.Comment, error)
	findPostCommentsFn func(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	deleteFn           func(ctx context.Context, id int64) error
}

func (m *mockCommentRepo) Create(ctx context.Context, comment model.Comment) (*model.FullComment, error) {
	return m.createFn(ctx, comment)
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockCommentRepo) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	return m.findPostCommentsFn(ctx, postID, limit, offset)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockLikeRepo struct {
	createFn func(ctx context.Context, postID int64, userID uuid.UUID) error
	deleteFn func(ctx context.Context, postID int64, userID uuid.UUID) error
	countFn  func(ctx context.Context, postID int64) (int64, error)
	existsFn func(ctx context.Context, postID int64, userID uuid.UUID) (bool, error)
}

func (m *mockLikeRepo) Create(ctx context.Context, postID int64, userID uuid.UUID) error {
	return m.createFn(ctx, postID, userID)
}

func (m *mockLikeRepo) Delete(ctx context.Context, postID int64, userID uuid.UUID) error {
	return m.deleteFn(ctx, postID, userID)
}

func (m *mockLikeRepo) Count(ctx context.Context, postID int64) (int64, error) {
	return m.countFn(ctx, postID)
}

func (m *mockLikeRepo) Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	return m.existsFn(ctx, postID, userID)
}

func newTestRepo(post postgres.Post, comment postgres.Comment, like postgres.Like) *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Post:    post,
			Comment: comment,
			Like:    like,
		},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
