// Package util contains small helpers shared across layers.
package util

import (
	"regexp"
	"strings"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`&[a-zA-Z#0-9]+;`)
)

// StripMarkup removes HTML tags and entities from rich-text content,
// replacing them with spaces so adjacent words do not merge.
func StripMarkup(content string) string {
	stripped := tagPattern.ReplaceAllString(content, " ")
	stripped = entityPattern.ReplaceAllString(stripped, " ")

	return strings.TrimSpace(stripped)
}

// CountWords returns the number of whitespace-separated words in the
// markup-stripped content.
func CountWords(content string) int {
	return len(strings.Fields(StripMarkup(content)))
}
