package sanitization

import (
	"strings"
)

// EscapeHTML replaces the five HTML-significant characters with their
// entity equivalents so user-supplied text can be embedded in an HTML
// document. Ampersands already present in the input are escaped too, so
// pre-encoded entities come out double-escaped rather than live.
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
