package recipe

import (
	"context"

	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
)

// Repository defines the storage contract for catalog management.
type Repository interface {
	Upsert(ctx context.Context, rec *domrecipe.Recipe) (bool, error)
	Get(ctx context.Context, id string) (domrecipe.Recipe, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
