// Package sanitize normalizes claim text before it reaches the pipeline.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Clean strips any markup from a claim and normalizes its whitespace.
// Surrounding quote characters are trimmed so `"The sky is blue"` and
// `The sky is blue` verify identically.
func Clean(claim string) string {
	s := policy.Sanitize(claim)
	s = html.UnescapeString(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	return s
}

// Normalize lowercases a cleaned claim for lookup and digest purposes.
func Normalize(claim string) string {
	return strings.ToLower(Clean(claim))
}
