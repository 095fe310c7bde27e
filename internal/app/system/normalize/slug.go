// internal/app/system/normalize/slug.go
package normalize

import (
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// maxSlugLen bounds slug length so URLs stay reasonable even for long titles.
const maxSlugLen = 80

// Slug derives a URL-safe identifier from a title: fold case and
// diacritics, keep [a-z0-9], collapse everything else into single hyphens.
// Returns "untitled" when nothing usable remains.
func Slug(title string) string {
	folded := text.Fold(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	s := strings.Trim(b.String(), "-")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	if s == "" {
		return "untitled"
	}
	return s
}

// SlugWithSuffix appends a numeric suffix for collision retries:
// SlugWithSuffix("annual-report", 2) == "annual-report-2".
func SlugWithSuffix(slug string, n int) string {
	return slug + "-" + strconv.Itoa(n)
}
