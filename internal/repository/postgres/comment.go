package postgres

import (
	"context"
	"time"

	"github.com/blogify/blog-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.FullComment, error) {
	comment.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO comments(parent_id, post_id, author_id, content, created_at)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id`,
		comment.ParentID,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
	).Scan(&comment.ID); err != nil {
		return nil, err
	}

	author := model.UserSummary{ID: comment.AuthorID}
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.name, u.email, u.image FROM users u WHERE u.id = $1",
		comment.AuthorID,
	).Scan(&author.Name, &author.Email, &author.Image); err != nil {
		return nil, err
	}

	return &model.FullComment{Comment: comment, Author: author}, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		`SELECT c.id, c.parent_id, c.post_id, c.author_id, c.content, c.created_at
		FROM comments c
		WHERE c.id = $1`,
		id,
	).Scan(
		&comment.ID,
		&comment.ParentID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Content,
		&comment.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		c.id, c.parent_id, c.post_id, c.author_id, c.content, c.created_at,
		u.name, u.email, u.image
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`,
		postID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*model.FullComment{}
	for rows.Next() {
		var comment model.FullComment
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.ParentID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.Content,
			&comment.Comment.CreatedAt,
			&comment.Author.Name,
			&comment.Author.Email,
			&comment.Author.Image,
		); err != nil {
			return nil, err
		}
		comment.Author.ID = comment.Comment.AuthorID

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}
