package document

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)
	newlineRun    = regexp.MustCompile(`\n+`)
)

// Clean collapses whitespace runs to one space and trims the result.
//
// The newline pass runs after the whitespace pass and therefore never
// matches; the order is kept so stored chunk text stays identical to
// knowledge bases produced earlier.
func Clean(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
