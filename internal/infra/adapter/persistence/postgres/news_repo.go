// Package postgres implements the repository interfaces on Postgres.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"postforge/internal/domain/entity"
	"postforge/internal/repository"
)

type NewsRepo struct {
	db *sql.DB
}

func NewNewsRepo(db *sql.DB) repository.NewsRepository {
	return &NewsRepo{db: db}
}

// Upsert inserts the item or replaces the row with the same id. Items are
// keyed by id only; repeated searches returning the same id overwrite the
// previous row.
func (repo *NewsRepo) Upsert(ctx context.Context, item entity.NewsItem) error {
	const query = `
INSERT INTO news_items (id, title, summary, published_date, source, source_link, ingested_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    title          = EXCLUDED.title,
    summary        = EXCLUDED.summary,
    published_date = EXCLUDED.published_date,
    source         = EXCLUDED.source,
    source_link    = EXCLUDED.source_link,
    ingested_at    = EXCLUDED.ingested_at`

	if _, err := repo.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Summary, item.PublishedDate,
		item.Source, item.SourceLink, item.IngestedAt); err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}

// Latest returns at most limit items ordered newest first. ISO-8601 strings
// order lexicographically, so the text index matches the read path.
func (repo *NewsRepo) Latest(ctx context.Context, limit int) ([]entity.NewsItem, error) {
	const query = `
SELECT id, title, summary, published_date, source, source_link, ingested_at
FROM news_items
ORDER BY published_date DESC
LIMIT $1`

	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("Latest: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]entity.NewsItem, 0, limit)
	for rows.Next() {
		var item entity.NewsItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Summary,
			&item.PublishedDate, &item.Source, &item.SourceLink, &item.IngestedAt); err != nil {
			return nil, fmt.Errorf("Latest: Scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
