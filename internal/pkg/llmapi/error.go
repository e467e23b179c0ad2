// Package llmapi holds types shared by the adapters that call external
// chat-completion APIs.
package llmapi

import "fmt"

// UpstreamError carries a non-2xx response from an external LLM API.
// Handlers pass the upstream status through to the client together with a
// truncated error body; nothing is retried.
type UpstreamError struct {
	// Status is the HTTP status code returned by the upstream API.
	Status int
	// Details is the upstream error body, truncated for response safety.
	Details string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API returned %d", e.Status)
}

// maxDetailLen bounds how much upstream error body is echoed to clients.
const maxDetailLen = 200

// Truncate shortens an upstream error body so raw upstream output cannot
// flood an error response.
func Truncate(body string) string {
	if len(body) <= maxDetailLen {
		return body
	}
	return body[:maxDetailLen]
}
