package domain

import "errors"

var (
	// ErrRecipeNotFound signals a missing recipe.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidRecipe signals recipe fields that fail validation.
	ErrInvalidRecipe = errors.New("invalid recipe")
	// ErrInvalidQuery signals malformed search parameters.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidCursor signals a cursor issued under a different ordering or filter set.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrRetrieval signals a failure at the document-store boundary.
	ErrRetrieval = errors.New("retrieval failed")
)
