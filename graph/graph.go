// Package graph accumulates RDF triples into an ordered set and
// serializes them. The builder keeps insertion order so that equal
// inputs always produce byte-identical output.
package graph

import (
	"strings"

	"github.com/knakk/rdf"
)

// Graph is an ordered set of triples: adding a triple twice leaves a
// single copy. Prefix bindings are carried for display and for the
// JSON-LD serialization.
type Graph struct {
	triples  []rdf.Triple
	seen     map[string]struct{}
	prefixes []Prefix
}

// Prefix is one namespace binding.
type Prefix struct {
	Name string
	NS   string
}

func New() *Graph {
	return &Graph{seen: make(map[string]struct{})}
}

// key is the canonical form of a triple used for set membership.
func key(t rdf.Triple) string {
	return t.Serialize(rdf.NTriples)
}

// Add inserts t unless an equal triple is already present.
func (g *Graph) Add(t rdf.Triple) {
	k := key(t)
	if _, ok := g.seen[k]; ok {
		return
	}

	g.seen[k] = struct{}{}
	g.triples = append(g.triples, t)
}

func (g *Graph) AddAll(ts ...rdf.Triple) {
	for _, t := range ts {
		g.Add(t)
	}
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples in insertion order. The returned slice
// is a copy.
func (g *Graph) Triples() []rdf.Triple {
	ts := make([]rdf.Triple, len(g.triples))
	copy(ts, g.triples)

	return ts
}

// Bind registers the namespace ns under a prefix name. Rebinding a
// name replaces its namespace and keeps its position.
func (g *Graph) Bind(name, ns string) {
	for i, p := range g.prefixes {
		if p.Name == name {
			g.prefixes[i].NS = ns
			return
		}
	}

	g.prefixes = append(g.prefixes, Prefix{Name: name, NS: ns})
}

// Prefixes returns the namespace bindings in binding order. The
// returned slice is a copy.
func (g *Graph) Prefixes() []Prefix {
	ps := make([]Prefix, len(g.prefixes))
	copy(ps, g.prefixes)

	return ps
}

// Compact shortens an IRI to a prefixed name using the longest bound
// namespace that matches. Without a match the IRI is returned
// unchanged.
func (g *Graph) Compact(iri string) string {
	return CompactWith(g.prefixes, iri)
}

// CompactWith shortens an IRI against an explicit binding list, see
// Compact.
func CompactWith(prefixes []Prefix, iri string) string {
	best := -1
	for i, p := range prefixes {
		if strings.HasPrefix(iri, p.NS) && (best == -1 || len(p.NS) > len(prefixes[best].NS)) {
			best = i
		}
	}

	if best == -1 || len(iri) == len(prefixes[best].NS) {
		return iri
	}

	return prefixes[best].Name + ":" + iri[len(prefixes[best].NS):]
}

// Equal reports whether g and o contain the same triple set. Insertion
// order and prefix bindings do not matter.
func (g *Graph) Equal(o *Graph) bool {
	if g.Len() != o.Len() {
		return false
	}

	for k := range g.seen {
		if _, ok := o.seen[k]; !ok {
			return false
		}
	}

	return true
}
