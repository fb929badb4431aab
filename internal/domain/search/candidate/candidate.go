// Package candidate wraps a recipe with its relevance score for one search
// execution.
package candidate

import "github.com/cuisine-artisanale/recherche/internal/domain/recipe"

// Candidate is a single search hit. Score is only meaningful when Scored
// reports true; browse results carry recipes without scores.
type Candidate struct {
	recipe recipe.Recipe
	score  float64
	scored bool
}

// New creates a scored candidate.
func New(r recipe.Recipe, score float64) Candidate {
	return Candidate{recipe: r, score: score, scored: true}
}

// Unscored creates a candidate without relevance scoring (browse mode).
func Unscored(r recipe.Recipe) Candidate {
	return Candidate{recipe: r}
}

// Recipe returns the underlying recipe.
func (c *Candidate) Recipe() recipe.Recipe { return c.recipe }

// Score returns the relevance score in [0,1].
func (c *Candidate) Score() float64 { return c.score }

// Scored reports whether free-text matching produced the score.
func (c *Candidate) Scored() bool { return c.scored }
