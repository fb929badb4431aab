package fuzzy

import "testing"

// corpusWords mimics the word list extracted from titles
// ["Tarte aux pommes", "Tarte Tatin"].
var corpusWords = []string{"tarte", "aux", "pommes", "tatin"}

func TestCorrect_CloseMatch(t *testing.T) {
	if got := Correct("tart", corpusWords, 2); got != "tarte" {
		t.Errorf("Correct(tart) = %q, want \"tarte\"", got)
	}
}

func TestCorrect_NoCloseMatch(t *testing.T) {
	if got := Correct("xyzxyz", corpusWords, 2); got != "xyzxyz" {
		t.Errorf("Correct(xyzxyz) = %q, want unchanged", got)
	}
}

func TestCorrect_ExactMatch(t *testing.T) {
	if got := Correct("tatin", corpusWords, 2); got != "tatin" {
		t.Errorf("Correct(tatin) = %q, want unchanged", got)
	}
}

func TestCorrect_PicksClosest(t *testing.T) {
	// "pomme" is distance 1 from "pommes", distance 4 from "tarte".
	if got := Correct("pomme", corpusWords, 2); got != "pommes" {
		t.Errorf("Correct(pomme) = %q, want \"pommes\"", got)
	}
}

func TestCorrect_EmptyCorpus(t *testing.T) {
	if got := Correct("tart", nil, 2); got != "tart" {
		t.Errorf("Correct with empty corpus = %q, want unchanged", got)
	}
}

func TestCorrect_Deterministic(t *testing.T) {
	a := Correct("tar", corpusWords, 2)
	b := Correct("tar", corpusWords, 2)
	if a != b {
		t.Errorf("Correct not deterministic: %q vs %q", a, b)
	}
}
