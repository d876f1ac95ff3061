package annotation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateOK(t *testing.T) {
	if err := Validate(testDoc()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateEmptyDoc(t *testing.T) {
	if err := Validate(Doc{}); err != nil {
		t.Fatalf("expected no error for empty doc, got %v", err)
	}
}

func TestValidateTokenBeyondText(t *testing.T) {
	d := testDoc()
	d.Sents = nil
	d.Tokens = append(d.Tokens, Token{Start: 30, End: 35})

	err := Validate(d)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	if !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("expected ErrInvalidSpan, got %v", err)
	}

	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *SpanError, got %T", err)
	}

	if se.Kind != KindToken {
		t.Errorf("expected kind %q, got %q", KindToken, se.Kind)
	}

	if se.Index != 5 {
		t.Errorf("expected index 5, got %d", se.Index)
	}

	if se.TextLen != 27 {
		t.Errorf("expected text length 27, got %d", se.TextLen)
	}
}

func TestValidateNegativeStart(t *testing.T) {
	d := testDoc()
	d.Ents[0].Start = -1

	err := Validate(d)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *SpanError, got %T", err)
	}

	if se.Kind != KindEntity {
		t.Errorf("expected kind %q, got %q", KindEntity, se.Kind)
	}
}

func TestValidateEndNotAfterStart(t *testing.T) {
	d := testDoc()
	d.Sents = []Sentence{{Start: 5, End: 5}}
	d.Tokens = nil

	err := Validate(d)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *SpanError, got %T", err)
	}

	if !strings.Contains(se.Reason, "end not after start") {
		t.Errorf("unexpected reason %q", se.Reason)
	}
}

func TestValidateOverlappingSentences(t *testing.T) {
	d := testDoc()
	d.Tokens = nil
	d.Sents = []Sentence{{Start: 0, End: 15}, {Start: 13, End: 27}}

	err := Validate(d)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *SpanError, got %T", err)
	}

	if se.Kind != KindSentence || se.Index != 1 {
		t.Errorf("expected sentence 1, got %s %d", se.Kind, se.Index)
	}
}

func TestValidateSurfaceMismatch(t *testing.T) {
	d := testDoc()
	d.Tokens[1].Text = "Osama"

	err := Validate(d)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *SpanError, got %T", err)
	}

	if !strings.Contains(se.Reason, "surface form") {
		t.Errorf("unexpected reason %q", se.Reason)
	}
}

func TestValidateTokenOutsideSentence(t *testing.T) {
	d := testDoc()
	d.Sents = []Sentence{{Start: 0, End: 12}}

	err := Validate(d)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *SpanError, got %T", err)
	}

	if se.Kind != KindToken || se.Index != 2 {
		t.Errorf("expected token 2, got %s %d", se.Kind, se.Index)
	}
}

func TestValidateHeadOutOfRange(t *testing.T) {
	d := testDoc()
	d.Tokens[0].Head = 9

	err := Validate(d)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *SpanError, got %T", err)
	}

	if !strings.Contains(se.Reason, "head index") {
		t.Errorf("unexpected reason %q", se.Reason)
	}
}

func TestValidateRuneOffsets(t *testing.T) {
	// 15 runes, 17 bytes
	d := Doc{
		Text:  "Ein Käufer kam.",
		Sents: []Sentence{{Start: 0, End: 15}},
		Tokens: []Token{
			{Start: 0, End: 3, Text: "Ein"},
			{Start: 4, End: 10, Text: "Käufer"},
			{Start: 11, End: 14, Text: "kam"},
			{Start: 14, End: 15, Text: "."},
		},
	}

	if err := Validate(d); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
