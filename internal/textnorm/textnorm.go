// Package textnorm normalizes French recipe text for indexing and matching:
// lowercasing, diacritic stripping, and tokenization with stop-word removal.
// Ingest and query sides share this package so index tokens and query words
// always agree on form.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper removes combining marks after canonical decomposition, turning
// "crème brûlée" into "creme brulee".
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stopWords are high-frequency French function words excluded from the
// keyword index.
var stopWords = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "de": {}, "du": {}, "des": {},
	"un": {}, "une": {}, "et": {}, "ou": {}, "au": {}, "aux": {},
	"a": {}, "en": {}, "d": {}, "l": {}, "sur": {}, "avec": {},
	"pour": {}, "sans": {},
}

// Normalize lowercases s and strips diacritics.
func Normalize(s string) string {
	out, _, err := transform.String(stripper, strings.ToLower(s))
	if err != nil {
		// Transform only fails on malformed input; fall back to the
		// lowercased original rather than dropping the text.
		return strings.ToLower(s)
	}
	return out
}

// Tokenize splits s into normalized index tokens: lowercased, accent-stripped
// words with punctuation trimmed, stop words and single runes removed.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Words splits s into normalized words, keeping stop words and order. Used
// for query tokens, where every word the user typed matters.
func Words(s string) []string {
	return strings.FieldsFunc(Normalize(s), unicode.IsSpace)
}
