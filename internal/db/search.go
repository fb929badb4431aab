package db

// TagQuery is the input for a tag-membership search: documents whose Field
// contains any of Values, optionally restricted by exact-match Filters.
type TagQuery struct {
	IndexName    string
	Field        string
	Values       []string
	Filters      map[string]string
	Limit        int
	ReturnFields []string
}

// ListQuery is the input for a sorted, offset-paginated scan. Query defaults
// to "*" (everything) when empty; Filters narrow the scan with exact-match
// tag predicates; SortBy is a SORTABLE field name.
type ListQuery struct {
	IndexName    string
	Query        string
	Filters      map[string]string
	SortBy       string
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
