// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips dangerous markup from user-authored HTML
// (article bodies, project descriptions) before it is stored.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Safe formatting tags (p, strong, em, a, img, lists, headings)
// survive.
func Sanitize(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
