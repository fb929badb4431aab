package page

import (
	"errors"
	"testing"

	"github.com/cuisine-artisanale/recherche/internal/domain"
)

func TestCursor_RoundTrip(t *testing.T) {
	c := EncodeCursor("title_asc|cat=|reg=", 20)
	offset, err := DecodeCursor(c, "title_asc|cat=|reg=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offset != 20 {
		t.Errorf("offset = %d, want 20", offset)
	}
}

func TestCursor_EmptyIsStart(t *testing.T) {
	offset, err := DecodeCursor("", "any-scope")
	if err != nil || offset != 0 {
		t.Errorf("DecodeCursor(\"\") = %d, %v; want 0, nil", offset, err)
	}
}

func TestCursor_ScopeMismatch(t *testing.T) {
	c := EncodeCursor("title_asc|cat=Dessert|reg=", 10)
	_, err := DecodeCursor(c, "title_asc|cat=|reg=")
	if !errors.Is(err, domain.ErrInvalidCursor) {
		t.Errorf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestCursor_Garbage(t *testing.T) {
	for _, c := range []Cursor{"not base64 !!!", "bm9oYXNo"} {
		if _, err := DecodeCursor(c, "s"); !errors.Is(err, domain.ErrInvalidCursor) {
			t.Errorf("DecodeCursor(%q): expected ErrInvalidCursor, got %v", c, err)
		}
	}
}

func TestCursor_NegativeOffset(t *testing.T) {
	c := EncodeCursor("s", -5)
	if _, err := DecodeCursor(c, "s"); !errors.Is(err, domain.ErrInvalidCursor) {
		t.Errorf("expected ErrInvalidCursor for negative offset, got %v", err)
	}
}

func TestPage_Accessors(t *testing.T) {
	p := New(nil, true, EncodeCursor("s", 10))
	if !p.HasMore() {
		t.Error("HasMore = false")
	}
	if p.Next() == "" {
		t.Error("Next is empty despite HasMore")
	}
	if len(p.Items()) != 0 {
		t.Errorf("Items = %v", p.Items())
	}
}
