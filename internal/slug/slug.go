package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Make converts a human-readable name into a URL-safe identifier.
// Programming-language punctuation is expanded before the generic strip
// so that "C++", "C#" and "F*" keep distinct slugs.
func Make(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "++", "-plus-plus")
	s = strings.ReplaceAll(s, "+", "-plus")
	s = strings.ReplaceAll(s, "#", "-sharp")
	s = strings.ReplaceAll(s, "*", "-star")
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
