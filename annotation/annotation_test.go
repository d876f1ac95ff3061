package annotation

import "testing"

func testDoc() Doc {
	return Doc{
		Title: "obama",
		Lang:  "en",
		Text:  "Barack Obama visited Paris.",
		Sents: []Sentence{{Start: 0, End: 27}},
		Tokens: []Token{
			{Start: 0, End: 6, Text: "Barack", Lemma: "Barack", Pos: "PROPN", Head: 2, Dep: "nsubj"},
			{Start: 7, End: 12, Text: "Obama", Lemma: "Obama", Pos: "PROPN", Head: 0, Dep: "flat"},
			{Start: 13, End: 20, Text: "visited", Lemma: "visit", Pos: "VERB", Tag: "VBD", Morph: "Tense=Past|VerbForm=Fin", Head: 2, Dep: "ROOT"},
			{Start: 21, End: 26, Text: "Paris", Lemma: "Paris", Pos: "PROPN", Head: 2, Dep: "obj"},
			{Start: 26, End: 27, Text: ".", Lemma: ".", Pos: "PUNCT", Head: 2, Dep: "punct"},
		},
		Ents: []Entity{
			{Start: 0, End: 12, Label: "PERSON"},
			{Start: 21, End: 26, Label: "GPE"},
		},
	}
}

func TestSentenceTokensDerived(t *testing.T) {
	d := testDoc()

	got := d.SentenceTokens(0)
	if len(got) != 5 {
		t.Fatalf("expected 5 constituent tokens, got %d", len(got))
	}

	for i, ti := range got {
		if ti != i {
			t.Errorf("constituent %d: expected token index %d, got %d", i, i, ti)
		}
	}
}

func TestSentenceTokensAnnotated(t *testing.T) {
	d := testDoc()
	d.Sents[0].Tokens = []int{0, 1}

	got := d.SentenceTokens(0)
	if len(got) != 2 {
		t.Fatalf("expected 2 constituent tokens, got %d", len(got))
	}
}

func TestTokenSpans(t *testing.T) {
	d := testDoc()

	spans := d.TokenSpans()
	if len(spans) != len(d.Tokens) {
		t.Fatalf("expected %d spans, got %d", len(d.Tokens), len(spans))
	}

	if spans[3].Start != 21 || spans[3].End != 26 {
		t.Fatalf("expected span [21,26), got [%d,%d)", spans[3].Start, spans[3].End)
	}
}
