package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_Like(t *testing.T) {
	userID := uuid.New()

	t.Run("first like returns the new count", func(t *testing.T) {
		repo := newTestRepo(nil, nil, &mockLikeRepo{
			createFn: func(ctx context.Context, postID int64, id uuid.UUID) error {
				return nil
			},
			countFn: func(ctx context.Context, postID int64) (int64, error) {
				return 1, nil
			},
		})
		svc := newLikeService(testLogger(), repo)

		count, err := svc.Like(context.Background(), 7, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("second like is a conflict, not a no-op", func(t *testing.T) {
		repo := newTestRepo(nil, nil, &mockLikeRepo{
			createFn: func(ctx context.Context, postID int64, id uuid.UUID) error {
				return &pgconn.PgError{Code: "23505"}
			},
		})
		svc := newLikeService(testLogger(), repo)

		_, err := svc.Like(context.Background(), 7, userID)
		assert.ErrorIs(t, err, ErrAlreadyLiked)
	})

	t.Run("liking a missing post is not found", func(t *testing.T) {
		repo := newTestRepo(nil, nil, &mockLikeRepo{
			createFn: func(ctx context.Context, postID int64, id uuid.UUID) error {
				return &pgconn.PgError{Code: "23503"}
			},
		})
		svc := newLikeService(testLogger(), repo)

		_, err := svc.Like(context.Background(), 404, userID)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestLikeService_Unlike_IsIdempotent(t *testing.T) {
	deletes := 0
	repo := newTestRepo(nil, nil, &mockLikeRepo{
		deleteFn: func(ctx context.Context, postID int64, id uuid.UUID) error {
			deletes++
			return nil
		},
		countFn: func(ctx context.Context, postID int64) (int64, error) {
			return 4, nil
		},
	})
	svc := newLikeService(testLogger(), repo)

	// Unliking twice, including when no like row exists, never errors and
	// reports the current count both times.
	for i := 0; i < 2; i++ {
		count, err := svc.Unlike(context.Background(), 7, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	}
	assert.Equal(t, 2, deletes)
}

func TestLikeService_IsLiked(t *testing.T) {
	repo := newTestRepo(nil, nil, &mockLikeRepo{
		existsFn: func(ctx context.Context, postID int64, id uuid.UUID) (bool, error) {
			return postID == 7, nil
		},
	})
	svc := newLikeService(testLogger(), repo)

	liked, err := svc.IsLiked(context.Background(), 7, uuid.New())
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.IsLiked(context.Background(), 8, uuid.New())
	require.NoError(t, err)
	assert.False(t, liked)
}
