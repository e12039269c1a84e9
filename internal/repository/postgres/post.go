package postgres

import (
	"context"
	"time"

	"github.com/blogify/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO posts(author_id, title, slug, content, published, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		post.AuthorID,
		post.Title,
		post.Slug,
		post.Content,
		post.Published,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	tagIDs, err := resolveTags(ctx, tx, tagNames)
	if err != nil {
		return nil, err
	}
	if err := linkTags(ctx, tx, post.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update replaces the post row and its entire tag association set in one
// transaction. The author is never touched.
func (r *postRepo) Update(ctx context.Context, post model.Post, tagNames []string) (*model.Post, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	post.UpdatedAt = time.Now()
	if err := tx.QueryRow(
		ctx,
		`UPDATE posts
		SET title = $1, slug = $2, content = $3, published = $4, updated_at = $5
		WHERE id = $6
		RETURNING author_id, created_at`,
		post.Title,
		post.Slug,
		post.Content,
		post.Published,
		post.UpdatedAt,
		post.ID,
	).Scan(&post.AuthorID, &post.CreatedAt); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM post_tags WHERE post_id = $1", post.ID); err != nil {
		return nil, err
	}

	tagIDs, err := resolveTags(ctx, tx, tagNames)
	if err != nil {
		return nil, err
	}
	if err := linkTags(ctx, tx, post.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete removes the post and its dependent comments, likes and tag
// associations as a single atomic unit.
func (r *postRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM comments WHERE post_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM likes WHERE post_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM post_tags WHERE post_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM posts WHERE id = $1", id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		`SELECT p.id, p.author_id, p.title, p.slug, p.content, p.published, p.created_at, p.updated_at
		FROM posts p
		WHERE p.id = $1`,
		id,
	).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Published,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindDetailByID(ctx context.Context, id int64) (*model.FullPost, error) {
	return r.findDetail(ctx, "p.id = $1", id)
}

func (r *postRepo) FindDetailBySlug(ctx context.Context, slug string) (*model.FullPost, error) {
	return r.findDetail(ctx, "p.slug = $1", slug)
}

func (r *postRepo) findDetail(ctx context.Context, cond string, arg interface{}) (*model.FullPost, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.author_id, p.title, p.slug, p.content, p.published, p.created_at, p.updated_at,
		u.name, u.email, u.image, t.id, t.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		LEFT JOIN post_tags pt ON pt.post_id = p.id
		LEFT JOIN tags t ON t.id = pt.tag_id
		WHERE `+cond,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var post *model.FullPost
	for rows.Next() {
		var (
			row     model.Post
			author  model.UserSummary
			tagID   *int64
			tagName *string
		)
		if err := rows.Scan(
			&row.ID,
			&row.AuthorID,
			&row.Title,
			&row.Slug,
			&row.Content,
			&row.Published,
			&row.CreatedAt,
			&row.UpdatedAt,
			&author.Name,
			&author.Email,
			&author.Image,
			&tagID,
			&tagName,
		); err != nil {
			return nil, err
		}

		if post == nil {
			author.ID = row.AuthorID
			post = &model.FullPost{
				Post:   row,
				Author: author,
				Tags:   []model.Tag{},
			}
		}

		if tagID != nil && tagName != nil {
			post.Tags = append(post.Tags, model.Tag{ID: *tagID, Name: *tagName})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if post == nil {
		return nil, pgx.ErrNoRows
	}

	return post, nil
}

func (r *postRepo) FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.author_id, p.title, p.slug, p.content, p.published, p.created_at, p.updated_at,
		u.name, u.email, u.image, t.id, t.name,
		(SELECT count(*) FROM likes l WHERE l.post_id = p.id)
		FROM (
			SELECT * FROM posts
			WHERE published
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		) p
		JOIN users u ON u.id = p.author_id
		LEFT JOIN post_tags pt ON pt.post_id = p.id
		LEFT JOIN tags t ON t.id = pt.tag_id
		ORDER BY p.created_at DESC`,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPostList(rows)
}

func (r *postRepo) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.author_id, p.title, p.slug, p.content, p.published, p.created_at, p.updated_at,
		u.name, u.email, u.image, t.id, t.name,
		(SELECT count(*) FROM likes l WHERE l.post_id = p.id)
		FROM (
			SELECT * FROM posts
			WHERE author_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		) p
		JOIN users u ON u.id = p.author_id
		LEFT JOIN post_tags pt ON pt.post_id = p.id
		LEFT JOIN tags t ON t.id = pt.tag_id
		ORDER BY p.created_at DESC`,
		authorID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPostList(rows)
}

// scanPostList assembles joined post/tag rows into list items, keeping the
// query's ordering.
func scanPostList(rows pgx.Rows) ([]*model.PostListItem, error) {
	posts := []*model.PostListItem{}
	index := make(map[int64]*model.PostListItem)

	for rows.Next() {
		var (
			row     model.Post
			author  model.UserSummary
			tagID   *int64
			tagName *string
			likes   int64
		)
		if err := rows.Scan(
			&row.ID,
			&row.AuthorID,
			&row.Title,
			&row.Slug,
			&row.Content,
			&row.Published,
			&row.CreatedAt,
			&row.UpdatedAt,
			&author.Name,
			&author.Email,
			&author.Image,
			&tagID,
			&tagName,
			&likes,
		); err != nil {
			return nil, err
		}

		post, exists := index[row.ID]
		if !exists {
			author.ID = row.AuthorID
			post = &model.PostListItem{
				Post:   row,
				Author: author,
				Tags:   []model.Tag{},
				Likes:  likes,
			}
			index[row.ID] = post
			posts = append(posts, post)
		}

		if tagID != nil && tagName != nil {
			post.Tags = append(post.Tags, model.Tag{ID: *tagID, Name: *tagName})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
