// Package post provides the post-generation use case: it validates the
// company fields, builds the marketing prompt and requests a single chat
// completion from the configured generator.
package post

import "errors"

// ErrGeneratorNotConfigured indicates that no LLM credential was configured
// for the post generator. The handler converts it into a
// server-configuration error; no outbound call is made.
var ErrGeneratorNotConfigured = errors.New("generator API key not configured")
