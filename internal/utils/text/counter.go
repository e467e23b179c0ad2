// Package text provides small text measurement helpers shared by the post
// pipeline.
package text

import "unicode/utf8"

// CountRunes counts Unicode characters rather than bytes, so emoji and
// other multi-byte characters in a generated post count as one character
// each, matching how social platforms measure length.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// TargetPostLength is the character budget the prompt asks the model to
// stay within.
const TargetPostLength = 280

// WithinTarget reports whether a post fits the character budget.
func WithinTarget(s string) bool {
	return CountRunes(s) <= TargetPostLength
}
