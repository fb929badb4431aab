package search

import (
	"sort"
	"strings"

	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/candidate"
	"github.com/cuisine-artisanale/recherche/internal/fuzzy"
	"github.com/cuisine-artisanale/recherche/internal/textnorm"
)

// Options tunes scoring and retrieval. Zero fields fall back to the
// production defaults when passed to New.
type Options struct {
	// Threshold is the minimum overall score a candidate must reach to
	// appear in keyword-mode results. Inclusive.
	Threshold float64
	// ContainmentBonus is awarded when the whole title contains a query
	// word as a substring.
	ContainmentBonus float64
	// PrefixBonus is awarded when any title word starts with a query word.
	PrefixBonus float64
	// MaxCorrectionDistance caps how far a spell correction may stray
	// from the typed word.
	MaxCorrectionDistance int
	// OverfetchFactor multiplies the page size on candidate retrieval to
	// leave headroom for post-filter ranking.
	OverfetchFactor int
	// TitleCorpusLimit bounds the number of titles loaded for spell
	// correction.
	TitleCorpusLimit int
}

// DefaultOptions returns the production tuning.
func DefaultOptions() Options {
	return Options{
		Threshold:             0.5,
		ContainmentBonus:      1.0,
		PrefixBonus:           0.8,
		MaxCorrectionDistance: 2,
		OverfetchFactor:       4,
		TitleCorpusLimit:      500,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Threshold <= 0 {
		o.Threshold = d.Threshold
	}
	if o.ContainmentBonus <= 0 {
		o.ContainmentBonus = d.ContainmentBonus
	}
	if o.PrefixBonus <= 0 {
		o.PrefixBonus = d.PrefixBonus
	}
	if o.MaxCorrectionDistance <= 0 {
		o.MaxCorrectionDistance = d.MaxCorrectionDistance
	}
	if o.OverfetchFactor <= 0 {
		o.OverfetchFactor = d.OverfetchFactor
	}
	if o.TitleCorpusLimit <= 0 {
		o.TitleCorpusLimit = d.TitleCorpusLimit
	}
	return o
}

// rank scores every candidate against the corrected query words, drops
// those under the threshold, and orders the survivors by descending score.
// Stable sort keeps retrieval order on ties so repeated searches return
// identical orderings.
func (o Options) rank(recipes []domrecipe.Recipe, queryWords []string) []candidate.Candidate {
	ranked := make([]candidate.Candidate, 0, len(recipes))
	for _, r := range recipes {
		s := o.score(r.Title(), queryWords)
		if s >= o.Threshold {
			ranked = append(ranked, candidate.New(r, s))
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// score computes the ranking score of a title against the query words.
// The overall score is the best per-word score, not a sum: titles are
// short, so a single strong match beats averaging across words.
func (o Options) score(title string, queryWords []string) float64 {
	normTitle := textnorm.Normalize(title)
	titleWords := strings.Fields(normTitle)

	var best float64
	for _, w := range queryWords {
		if s := o.wordScore(w, normTitle, titleWords); s > best {
			best = s
		}
	}
	return best
}

// wordScore takes the best of three signals for one query word: whole-title
// containment, per-word prefix match, and edit-distance similarity.
func (o Options) wordScore(word, title string, titleWords []string) float64 {
	var best float64
	if strings.Contains(title, word) {
		best = o.ContainmentBonus
	}
	for _, t := range titleWords {
		if strings.HasPrefix(t, word) && o.PrefixBonus > best {
			best = o.PrefixBonus
		}
		if s := fuzzy.Similarity(word, t); s > best {
			best = s
		}
	}
	return best
}
