package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Slugify converts arbitrary input into a URL-safe slug: accents are
// decomposed and stripped, everything is lowercased, and runs of
// non-alphanumeric characters collapse into single hyphens.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)

	out = strings.ToLower(out)
	out = nonSlugChars.ReplaceAllString(out, "-")
	out = hyphenRuns.ReplaceAllString(out, "-")

	return strings.Trim(out, "-")
}
