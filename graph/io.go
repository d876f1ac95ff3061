package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"
)

// Format selects a graph serialization.
type Format int

const (
	NTriples Format = iota
	Turtle
	JSONLD
)

func (f Format) String() string {
	switch f {
	case Turtle:
		return "ttl"
	case JSONLD:
		return "jsonld"
	default:
		return "nt"
	}
}

// RDF maps the format onto the serialization of the rdf library. The
// second return value is false for formats the library does not
// handle.
func (f Format) RDF() (rdf.Format, bool) {
	switch f {
	case NTriples:
		return rdf.NTriples, true
	case Turtle:
		return rdf.Turtle, true
	}

	return rdf.NTriples, false
}

// SupportedFormats returns the format names accepted by ParseFormat.
func SupportedFormats() []string {
	return []string{"nt", "ttl", "jsonld"}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "nt", "ntriples":
		return NTriples, nil
	case "ttl", "turtle":
		return Turtle, nil
	case "jsonld", "json-ld":
		return JSONLD, nil
	}

	return NTriples, fmt.Errorf("unsupported format %q, valid formats are: %s", s, strings.Join(SupportedFormats(), ", "))
}

// Write serializes the graph to w. N-Triples and Turtle go through
// the rdf library encoder, JSON-LD through the flattened writer.
func (g *Graph) Write(w io.Writer, f Format) error {
	if f == JSONLD {
		return g.writeJSONLD(w)
	}

	rf, _ := f.RDF()
	enc := rdf.NewTripleEncoder(w, rf)
	if err := enc.EncodeAll(g.triples); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}

	return enc.Close()
}

// Read decodes a serialized graph into a new Graph. JSON-LD input is
// not supported.
func Read(r io.Reader, f Format) (*Graph, error) {
	rf, ok := f.RDF()
	if !ok {
		return nil, fmt.Errorf("reading %s graphs is not supported", f)
	}

	g := New()
	dec := rdf.NewTripleDecoder(r, rf)
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", f, err)
		}

		g.Add(t)
	}

	return g, nil
}
