// Package fuzzy implements the string matching primitives behind recipe
// search: Levenshtein distance, similarity scoring, morphological variant
// expansion, and corpus-based spell correction.
package fuzzy

// Distance returns the Levenshtein edit distance between a and b: the minimum
// number of single-rune insertions, deletions, or substitutions transforming
// one into the other. Case-sensitive; callers normalize beforehand.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	la := len(ra)
	lb := len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Single-row DP: only the previous row is needed.
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}

// Similarity converts edit distance into a normalized score in [0,1]:
// 1 - distance/max(len). Two empty strings are identical, so 1.
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := max(la, lb)
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}
