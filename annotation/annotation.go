// Package annotation holds the in-memory form of an annotated
// document: the plain text plus the stand-off sentence, token and
// entity layers produced by an NLP pipeline. All offsets are rune
// offsets into Text, half open [start, end).
package annotation

import "github.com/revelaction/nifex/span"

type Doc struct {
	Id int `json:"-"`

	Title string `json:"title,omitempty"`

	// URI is the base IRI for resources generated from this document.
	// Empty means the exporter chooses one.
	URI string `json:"uri,omitempty"`

	// Lang is the BCP 47 language tag of the text, or empty.
	Lang string `json:"lang,omitempty"`

	Labels []string `json:"labels,omitempty"`

	// Text is the primary text all annotation offsets point into.
	Text string `json:"text"`

	Sents  []Sentence `json:"sents,omitempty"`
	Tokens []Token    `json:"tokens,omitempty"`
	Ents   []Entity   `json:"ents,omitempty"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is one sentence of the document text.
type Sentence struct {
	Start int `json:"start"`
	End   int `json:"end"`

	// Tokens holds the doc-level indexes of the constituent tokens.
	// When empty the constituents are derived from the offsets.
	Tokens []int `json:"tokens,omitempty"`
}

// Token represents a word of the text, with POS and metadata.
type Token struct {
	Start int `json:"start"`
	End   int `json:"end"`

	// The unmodified surface form, Text[Start:End] in runes.
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma,omitempty"`

	// Coarse part of speech (UPOS)
	Pos string `json:"pos,omitempty"`

	// A string containing detailed POS data
	Tag string `json:"tag,omitempty"`

	// Morphological features in the FEATS format of CoNLL-U:
	//      Definite=Def|Gender=Fem|Number=Sing
	Morph string `json:"morph,omitempty"`

	// Head is the doc-level index of the syntactic head token. A root
	// token points at itself. Negative means not annotated. Only
	// meaningful when Dep is set.
	Head int `json:"head"`

	// Dependency relation to the head
	Dep string `json:"dep,omitempty"`
}

// Entity is a named entity occurrence. Entities may overlap each other
// and need not align with token boundaries.
type Entity struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

func (s Sentence) Span() span.Span {
	return span.New(s.Start, s.End)
}

func (t Token) Span() span.Span {
	return span.New(t.Start, t.End)
}

func (e Entity) Span() span.Span {
	return span.New(e.Start, e.End)
}

// TokenSpans returns the spans of all tokens of the document, in token
// order.
func (d Doc) TokenSpans() []span.Span {
	spans := make([]span.Span, len(d.Tokens))
	for i, t := range d.Tokens {
		spans[i] = t.Span()
	}

	return spans
}

// SentenceTokens returns the doc-level indexes of the tokens belonging
// to sentence i. The annotated constituent list wins; without one the
// constituents are derived by offset containment.
func (d Doc) SentenceTokens(i int) []int {
	s := d.Sents[i]
	if len(s.Tokens) > 0 {
		return s.Tokens
	}

	return span.Covered(d.TokenSpans(), s.Span())
}
