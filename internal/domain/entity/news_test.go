package entity

import (
	"testing"
	"time"
)

func TestNewsItem_Normalize_AssignsID(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	item := NewsItem{Title: "no id yet"}
	item.Normalize(now)

	if item.ID == "" {
		t.Fatal("expected a generated id")
	}
	if item.IngestedAt != "2025-08-01T12:00:00Z" {
		t.Fatalf("IngestedAt = %q", item.IngestedAt)
	}
}

func TestNewsItem_Normalize_KeepsExistingID(t *testing.T) {
	item := NewsItem{ID: "keep-me", IngestedAt: "2025-01-01T00:00:00Z"}
	item.Normalize(time.Now())

	if item.ID != "keep-me" {
		t.Fatalf("ID = %q, want keep-me", item.ID)
	}
	if item.IngestedAt != "2025-01-01T00:00:00Z" {
		t.Fatalf("IngestedAt overwritten: %q", item.IngestedAt)
	}
}

func TestNewsItem_PublishedTime(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{"rfc3339", "2025-07-19T10:00:00Z", time.Date(2025, 7, 19, 10, 0, 0, 0, time.UTC)},
		{"date only", "2025-07-19", time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)},
		{"garbage", "last Tuesday", time.Time{}},
		{"empty", "", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewsItem{PublishedDate: tt.date}
			if got := item.PublishedTime(); !got.Equal(tt.want) {
				t.Fatalf("PublishedTime() = %v, want %v", got, tt.want)
			}
		})
	}
}
