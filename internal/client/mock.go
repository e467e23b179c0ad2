package client

import "postforge/internal/domain/entity"

// mockItems is the fixed dataset shown when the gateway cannot serve live
// news. IDs are stable so selection state survives a retry.
var mockItems = []entity.NewsItem{
	{
		ID:            "mock-1",
		Title:         "Major courier commits to a fully electric urban fleet by 2030",
		Summary:       "One of Europe's largest parcel carriers announced it will replace its entire urban delivery fleet with electric vans. The rollout starts in twelve cities next year.",
		PublishedDate: "2026-08-28",
		Source:        "Fleet Weekly",
	},
	{
		ID:            "mock-2",
		Title:         "New megawatt charging corridor opens for heavy goods vehicles",
		Summary:       "A charging network operator opened the first cross-border megawatt charging corridor for electric trucks. Operators report charge stops now fit within mandated driver breaks.",
		PublishedDate: "2026-08-27",
		Source:        "Transport Daily",
	},
	{
		ID:            "mock-3",
		Title:         "Depot electrification costs fall as smart charging software matures",
		Summary:       "A new industry study finds depot conversion costs dropped by a fifth year on year. Smart charging schedules that avoid peak tariffs account for most of the savings.",
		PublishedDate: "2026-08-25",
		Source:        "EV Industry Review",
	},
}

// MockNews returns a copy of the fixed fallback dataset.
func MockNews() []entity.NewsItem {
	out := make([]entity.NewsItem, len(mockItems))
	copy(out, mockItems)
	return out
}
