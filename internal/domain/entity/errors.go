// Package entity defines the domain types shared across the application:
// the company profile fed into every prompt and the news items flowing
// through the search/store/fetch pipeline.
package entity

import "fmt"

// ValidationError reports a request field that failed validation.
// Handlers convert it into a 400 response before any outbound call is made.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}
