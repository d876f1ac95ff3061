// Package render writes documents and triples to a terminal: document
// text with colorized entity mentions, document listing lines and a
// prefixed-name display for RDF terms.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/nif"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

type Renderer struct {
	Out io.Writer

	HasColor bool

	HasPrefix bool

	// Prefixes are the namespace bindings used to shorten IRIs when
	// HasPrefix is set.
	Prefixes []graph.Prefix
}

func NewRenderer() *Renderer {
	return &Renderer{Out: os.Stdout}
}

// Use adopts the prefix bindings of g for IRI display.
func (r *Renderer) Use(g *graph.Graph) {
	r.Prefixes = g.Prefixes()
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}

func (r *Renderer) NextColor() {

	// toggle
	r.HasColor = !r.HasColor
}

// Doc writes the document text on one line, entity mentions colorized.
func (r *Renderer) Doc(d annotation.Doc) {
	fmt.Fprintf(r.Out, "%s%s\n", r.buildPrefixDoc(d), r.DocString(d))
}

// DocString returns the document text flattened to one line. When
// HasColor is set every entity mention is colorized; nested and
// overlapping mentions stay inside the colorized span of the first
// mention covering them.
func (r *Renderer) DocString(d annotation.Doc) string {
	text := strings.ReplaceAll(d.Text, "\n", " ")
	if !r.HasColor || len(d.Ents) == 0 {
		return text
	}

	ents := make([]annotation.Entity, len(d.Ents))
	copy(ents, d.Ents)
	sort.SliceStable(ents, func(i, j int) bool {
		return ents[i].Start < ents[j].Start
	})

	// the newline substitution is one rune for one rune, the entity
	// offsets stay valid
	runes := []rune(text)

	var str strings.Builder
	last := 0
	for _, e := range ents {
		if e.Start < last || e.End > len(runes) {
			continue
		}

		str.WriteString(string(runes[last:e.Start]))
		str.WriteString(colorAnchor(string(runes[e.Start:e.End]), r.HasColor))
		last = e.End
	}

	str.WriteString(string(runes[last:]))

	return str.String()
}

// DocLine writes one listing line for a document: id, title, language
// and labels.
func (r *Renderer) DocLine(d annotation.Doc) {
	fmt.Fprintf(r.Out, "%3d %s %-3s %s\n", d.Id, r.title(d.Title), d.Lang, strings.Join(d.Labels, " "))
}

// Entities writes one line per entity mention: label and anchor text.
func (r *Renderer) Entities(d annotation.Doc) {
	runes := []rune(d.Text)
	for i, e := range d.Ents {
		if e.Start < 0 || e.End > len(runes) {
			continue
		}

		var prefix string
		if r.HasPrefix {
			prefix = fmt.Sprintf("[%4d %5d:%-5d] 🏷  ", i, e.Start, e.End)
		}

		anchor := strings.ReplaceAll(e.Span().Text(runes), "\n", " ")
		fmt.Fprintf(r.Out, "%s%s %s\n", prefix, r.label(e.Label), anchor)
	}
}

// Triple writes one triple.
func (r *Renderer) Triple(t rdf.Triple) {
	fmt.Fprintf(r.Out, "%s\n", r.TripleString(t))
}

// TripleString renders a triple as subject, predicate and object
// separated by single spaces.
func (r *Renderer) TripleString(t rdf.Triple) string {
	s := r.Term(t.Subj)
	p := r.Term(t.Pred)
	o := r.Term(t.Obj)

	if r.HasColor {
		s = Grey256 + s + Off
		p = Yellow256 + p + Off
	}

	return s + " " + p + " " + o
}

// Term renders a single RDF term. IRIs are shortened to prefixed names
// when HasPrefix is set and a binding matches, otherwise wrapped in
// angle brackets. Literals keep their language tag or datatype, the
// xsd:string default is dropped.
func (r *Renderer) Term(term rdf.Term) string {
	switch term.Type() {
	case rdf.TermIRI:
		return r.iri(term.String())
	case rdf.TermLiteral:
		lit := term.(rdf.Literal)
		quoted := strconv.Quote(lit.String())
		if lit.Lang() != "" {
			return quoted + "@" + lit.Lang()
		}

		if dt := lit.DataType.String(); dt != nif.TypeString {
			return quoted + "^^" + r.iri(dt)
		}

		return quoted
	}

	return term.Serialize(rdf.NTriples)
}

func (r *Renderer) iri(iri string) string {
	if r.HasPrefix {
		if c := graph.CompactWith(r.Prefixes, iri); c != iri {
			return c
		}
	}

	return "<" + iri + ">"
}

func colorAnchor(anchor string, hasColor bool) string {
	if !hasColor {
		return anchor
	}

	return Green256 + anchor + Off
}

func (r *Renderer) buildPrefixDoc(d annotation.Doc) string {

	if !r.HasPrefix {
		return ""
	}

	return fmt.Sprintf("[%s %2d] ✍  ", r.title(d.Title), d.Id)
}

// title pads or cuts the document title to a fixed column width before
// coloring it, the escape codes have no width on the terminal.
func (r *Renderer) title(title string) string {
	l := len(title)
	var part string
	if l <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = title[:20]
	}

	if !r.HasColor {
		return part
	}

	return Grey256 + part + Off
}

// label pads or cuts the entity label to a fixed column width before
// coloring it.
func (r *Renderer) label(label string) string {
	l := len(label)
	var part string
	if l <= 12 {
		part = fmt.Sprintf("%-12s", label)
	} else {
		part = label[:12]
	}

	if !r.HasColor {
		return part
	}

	return Yellow256 + part + Off
}
