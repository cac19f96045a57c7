package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes to NFD, drops combining marks, and
// recomposes, so "Süd" and "Sud" normalize to the same string.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// normalizeText lowercases, trims, collapses whitespace, and strips
// diacritics. Used on both the query and every candidate field so that
// matching is case- and accent-insensitive.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}
	return strings.Join(strings.Fields(s), " ")
}

// mergeKey builds the dedup key for a product: lowercased, trimmed
// name and category joined with an underscore. Diacritics are kept;
// duplicate records in the source data differ only in case.
func mergeKey(name, category string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "_" + strings.ToLower(strings.TrimSpace(category))
}

// containsAtBoundary reports whether needle occurs in haystack starting
// at a word boundary (string start, or preceded by a space or hyphen).
// Both arguments must already be normalized.
func containsAtBoundary(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		idx += from
		if idx == 0 {
			return true
		}
		switch haystack[idx-1] {
		case ' ', '-':
			return true
		}
		from = idx + 1
		if from >= len(haystack) {
			return false
		}
	}
}
