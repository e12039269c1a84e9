package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// resolveTags finds or creates a tag row per name inside the caller's
// transaction. The upsert is atomic, so two requests introducing the same new
// name both get the same id instead of one failing on the unique constraint.
// Duplicate names in the input collapse to a single id.
func resolveTags(ctx context.Context, tx pgx.Tx, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	seen := make(map[int64]struct{}, len(names))

	for _, name := range names {
		var id int64
		if err := tx.QueryRow(
			ctx,
			"INSERT INTO tags(name) VALUES($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id",
			name,
		).Scan(&id); err != nil {
			return nil, err
		}

		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

func linkTags(ctx context.Context, tx pgx.Tx, postID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO post_tags(post_id, tag_id) VALUES($1, $2)",
			postID,
			tagID,
		); err != nil {
			return err
		}
	}

	return nil
}
