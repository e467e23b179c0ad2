// Package repository declares the persistence interfaces implemented by the
// storage adapters under internal/infra/adapter.
package repository

import (
	"context"

	"postforge/internal/domain/entity"
)

// NewsRepository persists industry news items keyed by their id.
type NewsRepository interface {
	// Upsert inserts the item or replaces the stored row with the same id.
	// The caller guarantees a non-empty id.
	Upsert(ctx context.Context, item entity.NewsItem) error
	// Latest returns at most limit items, newest first by published date.
	Latest(ctx context.Context, limit int) ([]entity.NewsItem, error)
}
