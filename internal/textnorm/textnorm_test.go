package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize_StripsAccents(t *testing.T) {
	cases := map[string]string{
		"Crème Brûlée":      "creme brulee",
		"Gâteau":            "gateau",
		"Tarte aux pommes":  "tarte aux pommes",
		"PÂTÉ en croûte":    "pate en croute",
		"":                  "",
		"Œufs à la neige":   "œufs a la neige", // Œ is a letter, not a combining mark
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTokenize_DropsStopWords(t *testing.T) {
	got := Tokenize("Tarte aux pommes")
	want := []string{"tarte", "pommes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_Punctuation(t *testing.T) {
	got := Tokenize("Bœuf bourguignon, sauce au vin!")
	for _, tok := range got {
		if tok == "" || tok == "," || tok == "!" {
			t.Errorf("punctuation leaked into tokens: %v", got)
		}
	}
}

func TestTokenize_Dedup(t *testing.T) {
	got := Tokenize("tarte tarte tarte")
	if len(got) != 1 || got[0] != "tarte" {
		t.Errorf("Tokenize(repeated) = %v, want [tarte]", got)
	}
}

func TestWords_KeepsStopWordsAndOrder(t *testing.T) {
	got := Words("Tarte aux Pommes")
	want := []string{"tarte", "aux", "pommes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestWords_WhitespaceOnly(t *testing.T) {
	if got := Words("   \t  "); len(got) != 0 {
		t.Errorf("Words(whitespace) = %v, want empty", got)
	}
}
