package news

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"postforge/internal/domain/entity"
	"postforge/internal/observability/metrics"
	"postforge/internal/repository"
)

// Searcher runs one search-capable chat completion and returns the raw
// completion text. The implementation lives under internal/infra/searcher.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// FetchLimit caps how many items Latest returns.
const FetchLimit = 10

// SearchResult is the outcome of one search-and-persist run.
type SearchResult struct {
	Items []entity.NewsItem
	// Saved reports whether at least one item reached the store.
	Saved bool
	// SavedCount is the number of successful writes; always <= len(Items).
	SavedCount int
}

// Service provides the news search and fetch use cases.
type Service struct {
	// Searcher is nil when no search credential is configured.
	Searcher Searcher
	// Repo is nil when no store is configured.
	Repo repository.NewsRepository
	// DefaultQuery replaces an empty caller query.
	DefaultQuery string
	// Now is a clock seam for tests; time.Now when nil.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Search runs one search completion, parses the returned item array,
// guarantees every item a unique id and an ingestion timestamp, and persists
// the items best-effort. Configuration is checked before any outbound call.
//
// Persistence is a scatter/gather of independent writes: a failed write is
// logged and counted but never fails the request or cancels sibling writes.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	if s.Searcher == nil {
		return nil, ErrSearchNotConfigured
	}
	if s.Repo == nil {
		return nil, ErrStoreNotConfigured
	}
	if strings.TrimSpace(query) == "" {
		query = s.DefaultQuery
	}

	raw, err := s.Searcher.Search(ctx, query)
	if err != nil {
		metrics.RecordNewsSearch(false)
		return nil, fmt.Errorf("search news: %w", err)
	}

	items, err := ParseItems(raw)
	if err != nil {
		metrics.RecordNewsSearch(false)
		return nil, err
	}

	now := s.now()
	for i := range items {
		items[i].Normalize(now)
	}

	saved := s.persist(ctx, items)
	metrics.RecordNewsSearch(true)

	slog.InfoContext(ctx, "news search completed",
		slog.String("query", query),
		slog.Int("items", len(items)),
		slog.Int("saved", saved))

	return &SearchResult{Items: items, Saved: saved > 0, SavedCount: saved}, nil
}

// persist writes every item concurrently and returns the success count.
// Each write targets a distinct key, so ordering between them is irrelevant.
func (s *Service) persist(ctx context.Context, items []entity.NewsItem) int {
	results := make([]bool, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := items[i]
			if err := s.Repo.Upsert(ctx, item); err != nil {
				metrics.RecordNewsItemSaveFailure()
				slog.WarnContext(ctx, "failed to save news item",
					slog.String("id", item.ID),
					slog.Any("error", err))
				return
			}
			metrics.RecordNewsItemSaved()
			results[i] = true
		}(i)
	}
	wg.Wait()

	saved := 0
	for _, ok := range results {
		if ok {
			saved++
		}
	}
	return saved
}

// Latest reads the stored items and returns at most FetchLimit of them,
// sorted non-increasing by published date. Items whose date does not parse
// sort last. There is no pagination and no caller-supplied filtering.
func (s *Service) Latest(ctx context.Context) ([]entity.NewsItem, error) {
	if s.Repo == nil {
		return nil, ErrStoreNotConfigured
	}

	items, err := s.Repo.Latest(ctx, FetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedTime().After(items[j].PublishedTime())
	})
	if len(items) > FetchLimit {
		items = items[:FetchLimit]
	}
	return items, nil
}
