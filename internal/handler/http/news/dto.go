// Package news provides the HTTP handlers for the news search and fetch
// endpoints.
package news

import "postforge/internal/domain/entity"

// searchRequest is the optional JSON body of a caller-initiated search.
type searchRequest struct {
	Query string `json:"query"`
}

// searchResponse reports the found items together with the outcome of the
// best-effort fan-out writes.
type searchResponse struct {
	Items      []entity.NewsItem `json:"items"`
	Saved      bool              `json:"saved"`
	SavedCount int               `json:"savedCount"`
}

// fetchResponse carries at most ten stored items, newest first.
type fetchResponse struct {
	Items []entity.NewsItem `json:"items"`
}
