package recherche

import "github.com/cuisine-artisanale/recherche/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrRecipeNotFound = domain.ErrRecipeNotFound
	ErrAlreadyExists  = domain.ErrAlreadyExists
	ErrInvalidRecipe  = domain.ErrInvalidRecipe
	ErrInvalidQuery   = domain.ErrInvalidQuery
	ErrInvalidCursor  = domain.ErrInvalidCursor
	ErrRetrieval      = domain.ErrRetrieval
)
