package news

import (
	"encoding/json"
	"regexp"
	"strings"

	"postforge/internal/domain/entity"
)

// fencedBlock matches a fenced code block, optionally tagged "json", and
// captures the inner text. Search models frequently wrap their JSON answer
// this way despite being told not to.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)\\n\\s*```")

// ExtractJSON returns the JSON payload carried by a completion. When the
// text contains a fenced code block the inner text is used; otherwise the
// trimmed text is returned verbatim. Extraction never fails - validation of
// the payload is the separate decode step in ParseItems.
func ExtractJSON(raw string) string {
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// ParseItems extracts and decodes the news item array from a completion.
// A payload that does not decode produces a *MalformedPayloadError carrying
// the raw completion text.
func ParseItems(raw string) ([]entity.NewsItem, error) {
	var items []entity.NewsItem
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &items); err != nil {
		return nil, &MalformedPayloadError{Raw: raw, Err: err}
	}
	return items, nil
}
