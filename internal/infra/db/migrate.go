package db

import "database/sql"

// MigrateUp creates the news store schema. Dates are stored as the ISO-8601
// strings delivered by the upstream model; malformed values are kept as-is
// rather than rejected, so the columns stay TEXT.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS news_items (
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL DEFAULT '',
    summary        TEXT NOT NULL DEFAULT '',
    published_date TEXT NOT NULL DEFAULT '',
    source         TEXT NOT NULL DEFAULT '',
    source_link    TEXT NOT NULL DEFAULT '',
    ingested_at    TEXT NOT NULL DEFAULT ''
)`); err != nil {
		return err
	}

	// Serves the newest-first read path.
	_, err := database.Exec(
		`CREATE INDEX IF NOT EXISTS idx_news_items_published_date ON news_items(published_date DESC)`)
	return err
}
