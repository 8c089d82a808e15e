// Package objectname derives safe object keys from user input: raw filenames,
// explicit names, or free-text titles that need sanitization.
package objectname

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultMaxLength is the maximum length of a sanitized title in runes.
const DefaultMaxLength = 100

// fallback is used when sanitization strips a title down to nothing.
const fallback = "file"

// illegalChars are rejected by common filesystems and object stores.
const illegalChars = `<>:"/\|?*`

// Sanitize turns arbitrary free-text into a filesystem and URL safe,
// underscore-delimited string, capped at DefaultMaxLength runes.
func Sanitize(title string) string {
	return SanitizeN(title, DefaultMaxLength)
}

// SanitizeN is Sanitize with an explicit length cap.
//
// Illegal characters and ASCII control characters become underscores, runs of
// whitespace and underscores collapse to a single underscore, and the result
// is trimmed. Truncation drops the trailing partial token after the last
// underscore so a token is never split mid-way. The result is never empty:
// inputs that sanitize to nothing yield "file".
func SanitizeN(title string, maxLength int) string {
	replaced := strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(illegalChars, r) {
			return '_'
		}
		return r
	}, title)

	// Splitting on whitespace/underscore runs and rejoining collapses mixed
	// separator runs and trims both ends in one pass.
	tokens := strings.FieldsFunc(replaced, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})
	name := strings.Join(tokens, "_")

	if runes := []rune(name); len(runes) > maxLength {
		name = string(runes[:maxLength])
		// Drop the partial token left by the cut, unless the truncated
		// string has no underscore at all.
		if i := strings.LastIndex(name, "_"); i >= 0 {
			name = name[:i]
		}
		name = strings.Trim(name, "_")
	}

	if name == "" {
		return fallback
	}
	return name
}

// ResolveKey returns the object key for an upload.
//
// Precedence: a title wins over an explicit name, which wins over the
// file's base name. Titles are sanitized and get the original file's
// extension (lowercased) appended; explicit names are trusted verbatim.
func ResolveKey(filePath, explicitName, title string) string {
	if title != "" {
		ext := strings.ToLower(filepath.Ext(filePath))
		return Sanitize(title) + ext
	}
	if explicitName != "" {
		return explicitName
	}
	return filepath.Base(filePath)
}
