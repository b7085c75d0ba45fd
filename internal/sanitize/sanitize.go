// Package sanitize neutralizes markup-significant characters in text that is
// echoed back to clients. Stored values stay raw; escaping happens exactly
// once, on the way out.
package sanitize

import (
	"html"
)

// Escape replaces characters that would be interpreted as markup or script
// when rendered by a browser (<, >, &, quotes) with their HTML entities.
// Plain text passes through unchanged.
func Escape(s string) string {
	return html.EscapeString(s)
}
