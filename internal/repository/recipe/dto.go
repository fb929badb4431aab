package recipe

import (
	"strings"

	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
)

// Flat hash field names. Keywords are comma-joined to match the TAG
// separator declared in the FT index.
const (
	fieldTitle    = "title"
	fieldKeywords = "keywords"
	fieldCategory = "category"
	fieldRegion   = "region"
)

var returnFields = []string{fieldTitle, fieldKeywords, fieldCategory, fieldRegion}

// buildHashFields converts a domain Recipe into a flat map for HSET.
func buildHashFields(r *domrecipe.Recipe) map[string]string {
	return map[string]string{
		fieldTitle:    r.Title(),
		fieldKeywords: strings.Join(r.Keywords(), ","),
		fieldCategory: r.Category(),
		fieldRegion:   r.Region(),
	}
}

// parseHashFields converts a flat hash map back into a domain Recipe.
func parseHashFields(id string, m map[string]string) domrecipe.Recipe {
	var keywords []string
	if raw := m[fieldKeywords]; raw != "" {
		keywords = strings.Split(raw, ",")
	}
	return domrecipe.Reconstruct(id, m[fieldTitle], m[fieldCategory], m[fieldRegion], keywords)
}
