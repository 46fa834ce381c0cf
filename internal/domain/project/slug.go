package project

import (
	"regexp"
	"strings"
)

var (
	slugStrip     = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugHyphenate = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL-safe slug from a project name: lowercase, word
// characters only, runs of whitespace/underscores/hyphens collapsed to a
// single hyphen, no leading or trailing hyphen. Slugify is idempotent.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphenate.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
