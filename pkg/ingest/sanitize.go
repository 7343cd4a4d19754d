package ingest

import (
	"strings"
	"unicode/utf8"
)

// SanitizeChunk strips characters that upset downstream embedding APIs:
// invalid UTF-8 sequences are dropped, remaining non-ASCII runes become
// spaces, and runs of whitespace collapse to a single space. Returns the
// cleaned text and false when nothing indexable remains.
func SanitizeChunk(text string) (string, bool) {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r == utf8.RuneError {
			continue
		}
		if r > 127 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.Join(strings.Fields(b.String()), " ")
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}
