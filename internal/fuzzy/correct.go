package fuzzy

// Correct replaces word with the closest word from corpus when that closest
// word is within maxDist edits; otherwise word is returned unchanged. Ties
// keep the first corpus word encountered, so a stable corpus order yields a
// stable correction.
func Correct(word string, corpus []string, maxDist int) string {
	if word == "" || len(corpus) == 0 || maxDist <= 0 {
		return word
	}

	best := word
	bestDist := maxDist + 1

	wl := len([]rune(word))
	for _, cand := range corpus {
		if cand == word {
			return word
		}
		// Length difference is a lower bound on edit distance.
		cl := len([]rune(cand))
		if diff := abs(wl - cl); diff >= bestDist {
			continue
		}
		if d := Distance(word, cand); d < bestDist {
			best = cand
			bestDist = d
		}
	}

	if bestDist > maxDist {
		return word
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
