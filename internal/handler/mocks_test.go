package handler

import (
	"context"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/blogify/blog-service/internal/model"
	"github.com/blogify/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Hand-written mocks for the service interfaces. Each method delegates to an
// optional function field; tests only wire the calls they expect.

type mockPostService struct {
	createFn          func(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	updateFn          func(ctx context.Context, postID int64, callerID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	deleteFn          func(ctx context.Context, postID int64, callerID uuid.UUID) error
	findByIDFn        func(ctx context.Context, id int64, viewer *model.SessionUser) (*model.FullPost, error)
	findBySlugFn      func(ctx context.Context, slug string, viewer *model.SessionUser) (*model.FullPost, error)
	findPublishedFn   func(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error)
	findAuthorPostsFn func(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error)
}

func (m *mockPostService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	return m.createFn(ctx, authorID, input)
}

func (m *mockPostService) Update(ctx context.Context, postID int64, callerID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	return m.updateFn(ctx, postID, callerID, input)
}

func (m *mockPostService) Delete(ctx context.Context, postID int64, callerID uuid.UUID) error {
	return m.deleteFn(ctx, postID, callerID)
}

func (m *mockPostService) FindByID(ctx context.Context, id int64, viewer *model.SessionUser) (*model.FullPost, error) {
	return m.findByIDFn(ctx, id, viewer)
}

func (m *mockPostService) FindBySlug(ctx context.Context, slug string, viewer *model.SessionUser) (*model.FullPost, error) {
	return m.findBySlugFn(ctx, slug, viewer)
}

func (m *mockPostService) FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error) {
	return m.findPublishedFn(ctx, limit, offset)
}

func (m *mockPostService) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error) {
	return m.findAuthorPostsFn(ctx, authorID, limit, offset)
}

type mockCommentService struct {
	createFn           func(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateCommentRequest) (*model.FullComment, error)
	findPostCommentsFn func(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	deleteFn           func(ctx context.Context, commentID int64, callerID uuid.UUID) error
}

func (m *mockCommentService) Create(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateCommentRequest) (*model.FullComment, error) {
	return m.createFn(ctx, postID, authorID, input)
}

func (m *mockCommentService) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	return m.findPostCommentsFn(ctx, postID, limit, offset)
}

func (m *mockCommentService) Delete(ctx context.Context, commentID int64, callerID uuid.UUID) error {
	return m.deleteFn(ctx, commentID, callerID)
}

type mockLikeService struct {
	likeFn    func(ctx context.Context, postID int64, userID uuid.UUID) (int64, error)
	unlikeFn  func(ctx context.Context, postID int64, userID uuid.UUID) (int64, error)
	isLikedFn func(ctx context.Context, postID int64, userID uuid.UUID) (bool, error)
}

func (m *mockLikeService) Like(ctx context.Context, postID int64, userID uuid.UUID) (int64, error) {
	return m.likeFn(ctx, postID, userID)
}

func (m *mockLikeService) Unlike(ctx context.Context, postID int64, userID uuid.UUID) (int64, error) {
	return m.unlikeFn(ctx, postID, userID)
}

func (m *mockLikeService) IsLiked(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	return m.isLikedFn(ctx, postID, userID)
}

// mockSessionService resolves tokens from a fixed map; anything else is an
// unknown session.
type mockSessionService struct {
	sessions map[string]model.SessionUser
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (*model.SessionUser, error) {
	user, ok := m.sessions[token]
	if !ok {
		return nil, service.ErrSessionNotFound
	}

	return &user, nil
}

func newTestRouter(post service.Post, comment service.Comment, like service.Like, sessions map[string]model.SessionUser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	viper.Set("client.origin", "http://localhost:3000")

	h := New(&service.Service{
		Post:    post,
		Comment: comment,
		Like:    like,
		Session: &mockSessionService{sessions: sessions},
	})

	return h.InitRoutes()
}
