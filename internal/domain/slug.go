package domain

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a name or title. Non-ASCII letters
// are transliterated; the result only contains [a-z0-9] runs joined by
// single hyphens.
func Slugify(s string) string {
	out := slugSeparators.ReplaceAllString(slug.Make(s), "-")
	return strings.Trim(out, "-")
}
