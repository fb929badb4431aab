package fuzzy

import "strings"

// Variants expands a lowercased, accent-stripped query word into its
// morphological alternatives for keyword-index lookup: the word itself, the
// naive plural/singular toggle, and the French ie↔y alternation. This is
// deliberately not a stemmer; the two patterns cover the corpus.
func Variants(word string) []string {
	if word == "" {
		return nil
	}

	seen := map[string]struct{}{word: {}}
	out := []string{word}

	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	if strings.HasSuffix(word, "s") {
		add(strings.TrimSuffix(word, "s"))
	} else {
		add(word + "s")
	}

	if strings.HasSuffix(word, "ie") {
		add(strings.TrimSuffix(word, "ie") + "y")
	}
	if strings.HasSuffix(word, "y") {
		add(strings.TrimSuffix(word, "y") + "ie")
	}

	return out
}
