package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInternal         = errors.New("internal server error")
	ErrSessionNotFound  = errors.New("session not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrNotPostAuthor    = errors.New("you are not the author of this post")
	ErrSlugTaken        = errors.New("slug is already taken")
	ErrPostDoesNotExist = errors.New("referenced post does not exist")
	ErrNotCommentAuthor = errors.New("not allowed")
	ErrAlreadyLiked     = errors.New("already liked")
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
