// Package page provides the paginated search result and its opaque forward
// cursor.
package page

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/cuisine-artisanale/recherche/internal/domain"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/candidate"
)

// Cursor is an opaque forward-only pagination token. It encodes the offset
// into the title-ordered scan together with the scope (ordering + filters) it
// was issued under; decoding under a different scope fails.
type Cursor string

// EncodeCursor creates a cursor for the given scope and offset.
func EncodeCursor(scope string, offset int) Cursor {
	raw := scope + "#" + strconv.Itoa(offset)
	return Cursor(base64.URLEncoding.EncodeToString([]byte(raw)))
}

// DecodeCursor returns the offset a cursor points at, validating that it was
// issued under the given scope. An empty cursor means offset 0.
func DecodeCursor(c Cursor, scope string) (int, error) {
	if c == "" {
		return 0, nil
	}

	raw, err := base64.URLEncoding.DecodeString(string(c))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidCursor, err)
	}

	gotScope, offsetStr, ok := strings.Cut(string(raw), "#")
	if !ok {
		return 0, fmt.Errorf("%w: malformed token", domain.ErrInvalidCursor)
	}
	if gotScope != scope {
		return 0, fmt.Errorf("%w: issued under a different ordering or filters", domain.ErrInvalidCursor)
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: bad offset %q", domain.ErrInvalidCursor, offsetStr)
	}
	return offset, nil
}

// Page is one visible slice of search results.
type Page struct {
	items   []candidate.Candidate
	hasMore bool
	next    Cursor
}

// New creates a result page. next must be empty when hasMore is false.
func New(items []candidate.Candidate, hasMore bool, next Cursor) Page {
	return Page{items: items, hasMore: hasMore, next: next}
}

// Items returns the candidates on this page.
func (p *Page) Items() []candidate.Candidate { return p.items }

// HasMore reports whether another page exists.
func (p *Page) HasMore() bool { return p.hasMore }

// Next returns the cursor for the following page, empty when HasMore is false.
func (p *Page) Next() Cursor { return p.next }
