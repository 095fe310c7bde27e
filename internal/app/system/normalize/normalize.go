// internal/app/system/normalize/normalize.go
package normalize

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Email lowercases and trims an email address so lookups and the unique
// index treat addresses case-insensitively.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Fold lowercases and strips diacritics, producing the sort key stored
// in name_ci fields so Mongo's byte-order sort behaves case-insensitively.
func Fold(s string) string {
	return text.Fold(strings.TrimSpace(s))
}
