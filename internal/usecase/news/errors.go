// Package news provides the industry news use cases: searching via a
// search-capable LLM, persisting results and reading back the latest items.
package news

import "errors"

// Sentinel errors for the news use case. Handlers convert them into
// server-configuration error responses before any external call is made.
var (
	// ErrSearchNotConfigured indicates the search API key is absent.
	ErrSearchNotConfigured = errors.New("search API key not configured")

	// ErrStoreNotConfigured indicates the news store is unavailable
	// (no database configured).
	ErrStoreNotConfigured = errors.New("news store not configured")
)

// MalformedPayloadError reports that the search model's completion could not
// be decoded as a news item array. The raw completion text is preserved so
// the response can attach it for debuggability. The whole request fails;
// there is no partial recovery.
type MalformedPayloadError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e *MalformedPayloadError) Error() string {
	return "failed to parse news data from search response"
}

// Unwrap returns the underlying decode error.
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}
