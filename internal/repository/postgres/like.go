package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type likeRepo struct {
	db *pgxpool.Pool
}

func newLikeRepo(db *pgxpool.Pool) Like {
	return &likeRepo{
		db: db,
	}
}

// Create relies on the (post_id, user_id) primary key: a second like from the
// same user fails with a unique violation instead of silently succeeding.
func (r *likeRepo) Create(ctx context.Context, postID int64, userID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO likes(post_id, user_id, created_at) VALUES($1, $2, now())",
		postID,
		userID,
	)
	return err
}

// Delete is a no-op when no matching row exists.
func (r *likeRepo) Delete(ctx context.Context, postID int64, userID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"DELETE FROM likes WHERE post_id = $1 AND user_id = $2",
		postID,
		userID,
	)
	return err
}

func (r *likeRepo) Count(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT count(*) FROM likes WHERE post_id = $1",
		postID,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *likeRepo) Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)",
		postID,
		userID,
	).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
