package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeString removes potentially dangerous characters from free-form input
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")

	if len(input) > 1000 {
		input = input[:1000]
	}

	return input
}

// SanitizeHTML removes all HTML tags
func SanitizeHTML(input string) string {
	return htmlPolicy.Sanitize(input)
}

// SanitizeLevelName strips markup from a level display name and trims
// surrounding whitespace. A name consisting only of tags sanitizes to "".
func SanitizeLevelName(input string) string {
	return strings.TrimSpace(htmlPolicy.Sanitize(input))
}
