package annotation

import (
	"errors"
	"fmt"
)

// ErrInvalidSpan marks any annotation offset that does not fit the
// document text.
var ErrInvalidSpan = errors.New("invalid span")

// Layer kinds reported by SpanError.
const (
	KindSentence = "sentence"
	KindToken    = "token"
	KindEntity   = "entity"
)

// SpanError describes one malformed annotation span. It wraps
// ErrInvalidSpan.
type SpanError struct {
	Kind    string
	Index   int
	Start   int
	End     int
	TextLen int
	Reason  string
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("%s %d [%d,%d): %s (text length %d)", e.Kind, e.Index, e.Start, e.End, e.Reason, e.TextLen)
}

func (e *SpanError) Unwrap() error {
	return ErrInvalidSpan
}

// Validate checks every annotation layer of the document against the
// text and returns the first inconsistency found.
//
// Sentences must be well formed, inside the text and ordered without
// overlap. Tokens must be well formed, inside the text, in document
// order and, when a sentence layer is present, inside exactly one
// sentence. A token surface form must equal the text at its offsets.
// Entities must be well formed and inside the text; they may overlap
// each other and cross token boundaries.
func Validate(d Doc) error {
	runes := []rune(d.Text)
	textLen := len(runes)

	for i, s := range d.Sents {
		if err := checkSpan(KindSentence, i, s.Start, s.End, textLen); err != nil {
			return err
		}

		if i > 0 && s.Start < d.Sents[i-1].End {
			return &SpanError{KindSentence, i, s.Start, s.End, textLen, "overlaps preceding sentence"}
		}

		for _, ti := range s.Tokens {
			if ti < 0 || ti >= len(d.Tokens) {
				return &SpanError{KindSentence, i, s.Start, s.End, textLen, fmt.Sprintf("constituent token index %d out of range", ti)}
			}

			if !d.Tokens[ti].Span().In(s.Span()) {
				return &SpanError{KindSentence, i, s.Start, s.End, textLen, fmt.Sprintf("constituent token %d outside sentence", ti)}
			}
		}
	}

	for i, t := range d.Tokens {
		if err := checkSpan(KindToken, i, t.Start, t.End, textLen); err != nil {
			return err
		}

		if i > 0 && t.Start < d.Tokens[i-1].Start {
			return &SpanError{KindToken, i, t.Start, t.End, textLen, "before preceding token"}
		}

		if t.Text != "" && t.Text != t.Span().Text(runes) {
			return &SpanError{KindToken, i, t.Start, t.End, textLen, fmt.Sprintf("surface form %q differs from text at offsets", t.Text)}
		}

		if len(d.Sents) > 0 && !inOneSentence(d.Sents, t) {
			return &SpanError{KindToken, i, t.Start, t.End, textLen, "outside any sentence"}
		}

		if t.Dep != "" && t.Head >= len(d.Tokens) {
			return &SpanError{KindToken, i, t.Start, t.End, textLen, fmt.Sprintf("head index %d out of range", t.Head)}
		}
	}

	for i, e := range d.Ents {
		if err := checkSpan(KindEntity, i, e.Start, e.End, textLen); err != nil {
			return err
		}
	}

	return nil
}

func checkSpan(kind string, index, start, end, textLen int) error {
	s := &SpanError{Kind: kind, Index: index, Start: start, End: end, TextLen: textLen}

	switch {
	case start < 0:
		s.Reason = "negative start"
	case end <= start:
		s.Reason = "end not after start"
	case end > textLen:
		s.Reason = "end beyond text length"
	default:
		return nil
	}

	return s
}

func inOneSentence(sents []Sentence, t Token) bool {
	for _, s := range sents {
		if t.Span().In(s.Span()) {
			return true
		}
	}

	return false
}
