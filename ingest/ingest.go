// Package ingest rebuilds annotated documents from NIF graphs, the
// reverse direction of export. A round trip through export and ingest
// preserves text, offsets and annotation layers.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/nif"
)

// ErrNoContext is returned for graphs without a nif:Context resource.
var ErrNoContext = errors.New("no context resource in graph")

// Doc reads a serialized NIF graph and rebuilds the document.
func Doc(r io.Reader, f graph.Format) (annotation.Doc, error) {
	g, err := graph.Read(r, f)
	if err != nil {
		return annotation.Doc{}, err
	}

	return FromGraph(g)
}

// node collects the triples of one subject.
type node struct {
	id    string
	types map[string]bool
	props map[string][]rdf.Object
}

func (n *node) literal(pred string) (rdf.Literal, bool) {
	for _, o := range n.props[pred] {
		if lit, ok := o.(rdf.Literal); ok {
			return lit, true
		}
	}

	return rdf.Literal{}, false
}

func (n *node) text(pred string) string {
	lit, ok := n.literal(pred)
	if !ok {
		return ""
	}

	return lit.String()
}

func (n *node) ref(pred string) (string, bool) {
	for _, o := range n.props[pred] {
		if iri, ok := o.(rdf.IRI); ok {
			return iri.String(), true
		}
	}

	return "", false
}

// offsets returns the span of the node, read from the beginIndex and
// endIndex literals with the char= fragment of the subject URI as
// fallback.
func (n *node) offsets() (int, int, error) {
	begin, hasBegin := n.literal(nif.PropBeginIndex)
	end, hasEnd := n.literal(nif.PropEndIndex)

	if hasBegin && hasEnd {
		start, err := strconv.Atoi(begin.String())
		if err != nil {
			return 0, 0, fmt.Errorf("resource %s: beginIndex %q: %w", n.id, begin.String(), err)
		}

		stop, err := strconv.Atoi(end.String())
		if err != nil {
			return 0, 0, fmt.Errorf("resource %s: endIndex %q: %w", n.id, end.String(), err)
		}

		return start, stop, nil
	}

	if s, ok := nif.ParseOffsetURI(n.id); ok {
		return s.Start, s.End, nil
	}

	return 0, 0, fmt.Errorf("resource %s: no offsets", n.id)
}

// FromGraph rebuilds the document encoded in a NIF graph.
//
// The context resource provides text and language, the typed span
// resources provide the annotation layers. The rebuilt annotations are
// sorted by offset and validated against the text.
func FromGraph(g *graph.Graph) (annotation.Doc, error) {
	nodes := map[string]*node{}
	order := []string{}

	for _, t := range g.Triples() {
		id := subjectID(t.Subj)
		n, ok := nodes[id]
		if !ok {
			n = &node{id: id, types: map[string]bool{}, props: map[string][]rdf.Object{}}
			nodes[id] = n
			order = append(order, id)
		}

		pred := t.Pred.String()
		if pred == nif.PropType {
			if o, ok := t.Obj.(rdf.IRI); ok {
				n.types[o.String()] = true
				continue
			}
		}

		n.props[pred] = append(n.props[pred], t.Obj)
	}

	ctx := findContext(nodes, order)
	if ctx == nil {
		return annotation.Doc{}, ErrNoContext
	}

	d := annotation.Doc{}

	text, ok := ctx.literal(nif.PropIsString)
	if !ok {
		return annotation.Doc{}, fmt.Errorf("context %s: no nif:isString text", ctx.id)
	}

	d.Text = text.String()
	d.Lang = text.Lang()

	if strings.HasSuffix(ctx.id, "context") {
		d.URI = strings.TrimSuffix(ctx.id, "context")
	}

	runes := []rune(d.Text)
	heads := []string{}

	// a subject contributes to every layer its types name: a single
	// token entity shares its offset URI with the word resource
	for _, id := range order {
		n := nodes[id]
		if !n.types[nif.ClassSentence] && !n.types[nif.ClassWord] && !n.types[nif.ClassEntityOccurrence] {
			continue
		}

		start, end, err := n.offsets()
		if err != nil {
			return annotation.Doc{}, err
		}

		if n.types[nif.ClassSentence] {
			d.Sents = append(d.Sents, annotation.Sentence{Start: start, End: end})
		}

		if n.types[nif.ClassWord] {
			tok := annotation.Token{
				Start: start,
				End:   end,
				Text:  n.text(nif.PropAnchorOf),
				Lemma: n.text(nif.PropLemma),
				Pos:   n.text(nif.PropPosTag),
				Morph: n.text(nif.PropFeats),
				Dep:   n.text(nif.PropDependencyRelationType),
				Head:  -1,
			}

			if tok.Text == "" && end <= len(runes) && start >= 0 && start < end {
				tok.Text = string(runes[start:end])
			}

			head, _ := n.ref(nif.PropHead)
			heads = append(heads, head)

			d.Tokens = append(d.Tokens, tok)
		}

		if n.types[nif.ClassEntityOccurrence] {
			d.Ents = append(d.Ents, annotation.Entity{
				Start: start,
				End:   end,
				Label: n.text(nif.PropLiteralAnnotation),
			})
		}
	}

	sortLayers(&d, heads)

	if err := annotation.Validate(d); err != nil {
		return annotation.Doc{}, fmt.Errorf("rebuilt document: %w", err)
	}

	return d, nil
}

// sortLayers orders the rebuilt annotations by offset and resolves the
// head URIs to token indexes.
func sortLayers(d *annotation.Doc, heads []string) {
	sort.Slice(d.Sents, func(i, j int) bool {
		return d.Sents[i].Start < d.Sents[j].Start
	})

	// keep the head URIs attached to their tokens while sorting
	idx := make([]int, len(d.Tokens))
	for i := range idx {
		idx[i] = i
	}

	sort.Slice(idx, func(i, j int) bool {
		a, b := d.Tokens[idx[i]], d.Tokens[idx[j]]
		if a.Start != b.Start {
			return a.Start < b.Start
		}

		return a.End < b.End
	})

	tokens := make([]annotation.Token, len(d.Tokens))
	sortedHeads := make([]string, len(heads))
	byOffset := map[string]int{}

	for i, from := range idx {
		tokens[i] = d.Tokens[from]
		sortedHeads[i] = heads[from]
		byOffset[offsetKey(tokens[i].Start, tokens[i].End)] = i
	}

	for i, head := range sortedHeads {
		if head == "" {
			continue
		}

		s, ok := nif.ParseOffsetURI(head)
		if !ok {
			continue
		}

		if hi, ok := byOffset[offsetKey(s.Start, s.End)]; ok {
			tokens[i].Head = hi
		}
	}

	d.Tokens = tokens

	sort.Slice(d.Ents, func(i, j int) bool {
		a, b := d.Ents[i], d.Ents[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}

		if a.End != b.End {
			return a.End < b.End
		}

		return a.Label < b.Label
	})
}

func offsetKey(start, end int) string {
	return strconv.Itoa(start) + "," + strconv.Itoa(end)
}

// findContext locates the context node: the first subject typed
// nif:Context, with the target of a referenceContext link as fallback
// for graphs written without type triples.
func findContext(nodes map[string]*node, order []string) *node {
	for _, id := range order {
		if nodes[id].types[nif.ClassContext] {
			return nodes[id]
		}
	}

	for _, id := range order {
		if ref, ok := nodes[id].ref(nif.PropReferenceContext); ok {
			if ctx, ok := nodes[ref]; ok {
				return ctx
			}
		}
	}

	return nil
}

func subjectID(s rdf.Subject) string {
	if iri, ok := s.(rdf.IRI); ok {
		return iri.String()
	}

	return s.Serialize(rdf.NTriples)
}
