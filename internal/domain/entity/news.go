package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewsItem is a single industry news entry. Items are produced by the news
// search gateway from model output, upserted into the news store keyed by ID,
// and read back by the fetch gateway. Nothing updates or deletes them
// afterwards.
//
// PublishedDate and IngestedAt are ISO-8601 strings kept exactly as delivered
// by the upstream model; malformed values propagate unchanged.
type NewsItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	PublishedDate string `json:"publishedDate"`
	Source        string `json:"source"`
	SourceLink    string `json:"sourceLink,omitempty"`
	IngestedAt    string `json:"ingestedAt,omitempty"`
}

// Normalize assigns a fresh UUID when the item arrived without an id and
// stamps the ingestion time. Every item must carry a non-empty unique id
// before it is written to the store.
func (n *NewsItem) Normalize(now time.Time) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.IngestedAt == "" {
		n.IngestedAt = now.UTC().Format(time.RFC3339)
	}
}

// publishedDateLayouts are tried in order when interpreting PublishedDate.
// Upstream models usually emit RFC3339 but occasionally drop the time part.
var publishedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PublishedTime parses PublishedDate on a best-effort basis. Values that
// match none of the known layouts yield the zero time, which sorts last.
func (n *NewsItem) PublishedTime() time.Time {
	for _, layout := range publishedDateLayouts {
		if t, err := time.Parse(layout, n.PublishedDate); err == nil {
			return t
		}
	}
	return time.Time{}
}
