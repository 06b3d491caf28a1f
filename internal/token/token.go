// Package token reduces raw recognizer output to the single clean word the
// sinks consume.
package token

import "strings"

// Extract reduces raw OCR text to zero-or-one clean token.
//
// The first whitespace-delimited segment of the trimmed input is kept and
// every character that is not an ASCII letter is dropped (not replaced), so
// "c4t!" becomes "ct". The survivors are lowercased. Text after the first
// segment is ignored; the system targets single-word labels.
//
// Returns the empty string when the input is blank or the first segment has
// no letters at all. The result is either empty or matches ^[a-z]+$, which
// makes Extract idempotent on its own output.
func Extract(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	first := strings.Fields(trimmed)[0]

	var b strings.Builder
	for _, r := range first {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
