package utils

import (
	"regexp"
	"strings"
)

var (
	// Runs of anything that is not a letter, digit or hyphen
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// Repeated hyphens left behind by replacement
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slug lowercases a display name and reduces it to letters, digits and
// hyphens for use as an artifact directory name, e.g.
// "Sri Guru Granth Sahib Ji" becomes "sri-guru-granth-sahib-ji".
func Slug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = multipleHyphens.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "untitled"
	}
	return slug
}
