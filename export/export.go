// Package export maps annotated documents onto NIF 2.1 RDF graphs.
//
// Every annotation span becomes a resource whose URI carries its rune
// offsets in the RFC 5147 char= form. One context resource represents
// the document text itself; sentence, word and entity resources point
// back to it with nif:referenceContext.
package export

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/nif"
	"github.com/revelaction/nifex/span"
)

// Exporter converts documents to graphs. The zero value is not usable,
// use NewExporter.
//
// An Exporter carries no state between calls, the same instance can
// convert any number of documents from concurrent goroutines.
type Exporter struct {
	// BaseURI prefixes every generated resource URI. A document's own
	// URI field wins over it. When both are empty the base is derived
	// from the text content hash.
	BaseURI string

	// Layers selects the annotation layers to export. nil means infer
	// them from the document.
	Layers *Layers

	// FullText controls whether the context carries the document text
	// as nif:isString.
	FullText bool

	// ClassBase, when set, turns entity labels into itsrdf:taClassRef
	// class IRIs under this namespace.
	ClassBase string
}

func NewExporter() *Exporter {
	return &Exporter{
		BaseURI:  nif.DefaultBase,
		FullText: true,
	}
}

// ExportDoc converts one document to a NIF graph.
//
// The annotations are validated first; any span that does not fit the
// text aborts the conversion and no graph is returned. The result is
// deterministic: equal documents yield graphs with equal triple sets
// in the same insertion order.
func (e *Exporter) ExportDoc(d annotation.Doc) (*graph.Graph, error) {
	if err := annotation.Validate(d); err != nil {
		return nil, fmt.Errorf("document %q: %w", d.Title, err)
	}

	base := e.base(d)
	if _, err := rdf.NewIRI(nif.ContextURI(base)); err != nil {
		return nil, fmt.Errorf("base URI %q: %w", base, err)
	}

	if e.ClassBase != "" {
		if _, err := rdf.NewIRI(e.ClassBase); err != nil {
			return nil, fmt.Errorf("class base URI %q: %w", e.ClassBase, err)
		}
	}

	layers := e.Layers
	if layers == nil {
		layers = DetectLayers(d)
	}

	b := &builder{
		g:          graph.New(),
		base:       base,
		runes:      []rune(d.Text),
		tokenSpans: d.TokenSpans(),
	}

	ctx := b.iri(nif.ContextURI(base))
	b.add(ctx, nif.PropType, b.iri(nif.ClassContext))
	b.addInt(ctx, nif.PropBeginIndex, 0)
	b.addInt(ctx, nif.PropEndIndex, len(b.runes))
	if e.FullText {
		if err := b.addText(ctx, nif.PropIsString, d.Text, d.Lang); err != nil {
			return nil, err
		}
	}

	if layers.Sents {
		b.sentences(d, ctx, layers)
	}

	if layers.Tokens {
		b.words(d, ctx, layers)
	}

	if layers.NER {
		b.entities(d, ctx, e.ClassBase)
	}

	BindPrefixes(b.g)

	return b.g, nil
}

// BindPrefixes registers the vocabulary namespaces on g, in the order
// they appear in serializations.
func BindPrefixes(g *graph.Graph) {
	g.Bind("nif", nif.NIF)
	g.Bind("itsrdf", nif.ITSRDF)
	g.Bind("conll", nif.CONLL)
	g.Bind("rdf", nif.RDF)
	g.Bind("xsd", nif.XSD)
}

// base resolves the base URI for one document: the document URI wins,
// then the configured base, then a hash of the text.
func (e *Exporter) base(d annotation.Doc) string {
	if d.URI != "" {
		return d.URI
	}

	if e.BaseURI != "" {
		return e.BaseURI
	}

	return nif.HashBase(d.Text)
}

// builder accumulates the triples of one conversion.
type builder struct {
	g          *graph.Graph
	base       string
	runes      []rune
	tokenSpans []span.Span
}

// iri materializes a URI whose base was already checked in ExportDoc.
// The generated suffixes (char=, digits, comma and percent escaped
// labels) contain no character the IRI grammar rejects.
func (b *builder) iri(s string) rdf.IRI {
	u, _ := rdf.NewIRI(s)
	return u
}

// spanIRI returns the offset URI of s under the document base.
func (b *builder) spanIRI(s span.Span) rdf.IRI {
	return b.iri(nif.OffsetURI(b.base, s.Start, s.End))
}

func (b *builder) add(s rdf.Subject, pred string, o rdf.Object) {
	b.g.Add(rdf.Triple{Subj: s, Pred: b.iri(pred), Obj: o})
}

func (b *builder) addInt(s rdf.Subject, pred string, n int) {
	lit := rdf.NewTypedLiteral(strconv.Itoa(n), b.iri(nif.TypeNonNegativeInteger))
	b.add(s, pred, lit)
}

func (b *builder) addString(s rdf.Subject, pred, v string) {
	// a plain string always maps to a literal
	lit, _ := rdf.NewLiteral(v)
	b.add(s, pred, lit)
}

func (b *builder) addText(s rdf.Subject, pred, text, lang string) error {
	if lang == "" {
		b.addString(s, pred, text)
		return nil
	}

	lit, err := rdf.NewLangLiteral(text, lang)
	if err != nil {
		return fmt.Errorf("language tag %q: %w", lang, err)
	}

	b.add(s, pred, lit)

	return nil
}

// sentences emits one nif:Sentence resource per sentence, chained with
// nif:nextSentence. Whitespace-only sentences are skipped. Word links
// (firstWord, lastWord, nif:sentence) are only emitted when the token
// layer is on.
func (b *builder) sentences(d annotation.Doc, ctx rdf.IRI, layers *Layers) {
	var prev rdf.IRI
	hasPrev := false

	for i, s := range d.Sents {
		anchor := s.Span().Text(b.runes)
		if strings.TrimSpace(anchor) == "" {
			continue
		}

		uri := b.spanIRI(s.Span())
		if hasPrev {
			b.add(prev, nif.PropNextSentence, uri)
		}

		b.add(uri, nif.PropType, b.iri(nif.ClassSentence))
		b.addInt(uri, nif.PropBeginIndex, s.Start)
		b.addInt(uri, nif.PropEndIndex, s.End)
		b.addString(uri, nif.PropAnchorOf, anchor)
		b.add(uri, nif.PropReferenceContext, ctx)

		if layers.Tokens {
			toks := b.wordTokens(d, i)
			if len(toks) > 0 {
				b.add(uri, nif.PropFirstWord, b.spanIRI(d.Tokens[toks[0]].Span()))
				b.add(uri, nif.PropLastWord, b.spanIRI(d.Tokens[toks[len(toks)-1]].Span()))

				for _, ti := range toks {
					b.add(b.spanIRI(d.Tokens[ti].Span()), nif.PropSentence, uri)
				}
			}
		}

		prev = uri
		hasPrev = true
	}
}

// wordTokens returns the constituent token indexes of sentence i with
// whitespace tokens dropped.
func (b *builder) wordTokens(d annotation.Doc, i int) []int {
	toks := []int{}
	for _, ti := range d.SentenceTokens(i) {
		if b.isSpace(d.Tokens[ti]) {
			continue
		}

		toks = append(toks, ti)
	}

	return toks
}

// isSpace reports whether the token covers only whitespace.
func (b *builder) isSpace(t annotation.Token) bool {
	return strings.TrimSpace(t.Span().Text(b.runes)) == ""
}

// words emits one nif:Word resource per non-whitespace token, chained
// with nif:nextWord. The lexical layers (lemma, pos, morph, deps) ride
// on the word resources.
func (b *builder) words(d annotation.Doc, ctx rdf.IRI, layers *Layers) {
	var prev rdf.IRI
	hasPrev := false

	for _, t := range d.Tokens {
		if b.isSpace(t) {
			continue
		}

		uri := b.spanIRI(t.Span())
		if hasPrev {
			b.add(prev, nif.PropNextWord, uri)
		}

		b.addString(uri, nif.PropAnchorOf, t.Span().Text(b.runes))
		b.addInt(uri, nif.PropBeginIndex, t.Start)
		b.addInt(uri, nif.PropEndIndex, t.End)
		b.add(uri, nif.PropReferenceContext, ctx)
		b.add(uri, nif.PropType, b.iri(nif.ClassWord))

		if layers.Lemma && t.Lemma != "" {
			b.addString(uri, nif.PropLemma, t.Lemma)
		}

		if layers.Pos && t.Pos != "" {
			b.addString(uri, nif.PropPosTag, t.Pos)
		}

		if layers.Morph && t.Morph != "" {
			b.addString(uri, nif.PropFeats, t.Morph)
		}

		if layers.Deps && t.Dep != "" {
			if t.Head >= 0 && t.Head < len(d.Tokens) {
				b.add(uri, nif.PropHead, b.spanIRI(d.Tokens[t.Head].Span()))
			}

			b.addString(uri, nif.PropDependencyRelationType, t.Dep)
		}

		prev = uri
		hasPrev = true
	}
}

// entities emits one resource per entity occurrence, typed nif:Span
// and nif:EntityOccurrence. When an entity covers more than one token,
// each covered word links to it with nif:subString. Overlapping
// entities are emitted independently.
func (b *builder) entities(d annotation.Doc, ctx rdf.IRI, classBase string) {
	for _, ent := range d.Ents {
		uri := b.spanIRI(ent.Span())

		b.add(uri, nif.PropType, b.iri(nif.ClassSpan))
		b.add(uri, nif.PropType, b.iri(nif.ClassEntityOccurrence))
		b.addString(uri, nif.PropLiteralAnnotation, ent.Label)
		b.addInt(uri, nif.PropBeginIndex, ent.Start)
		b.addInt(uri, nif.PropEndIndex, ent.End)
		b.addString(uri, nif.PropAnchorOf, ent.Span().Text(b.runes))
		b.add(uri, nif.PropReferenceContext, ctx)

		if classBase != "" {
			b.add(uri, nif.PropTAClassRef, b.iri(classBase+url.PathEscape(ent.Label)))
		}

		covered := []int{}
		for _, ti := range span.Covered(b.tokenSpans, ent.Span()) {
			if b.isSpace(d.Tokens[ti]) {
				continue
			}

			covered = append(covered, ti)
		}

		if len(covered) > 1 {
			for _, ti := range covered {
				b.add(b.spanIRI(d.Tokens[ti].Span()), nif.PropSubString, uri)
			}
		}
	}
}
