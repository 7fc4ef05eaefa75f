package domain

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^\w-]+`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL slug from a title: lowercase, spaces to
// hyphens, non-word characters stripped, repeated hyphens collapsed.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
