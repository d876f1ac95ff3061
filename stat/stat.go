// Package stat aggregates annotation counts over documents and typed
// resource counts over exported graphs.
package stat

import (
	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/nif"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs               int
	NumSentences          int
	NumTokens             int
	NumEntities           int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the annotation counts of doc. Repeated calls
// accumulate over a corpus.
func (h *Handler) Aggregate(doc annotation.Doc) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(doc.Sents)
	h.stats.NumTokens += len(doc.Tokens)
	h.stats.NumEntities += len(doc.Ents)

	for i := range doc.Sents {
		h.stats.TokensPerSentenceDis[len(doc.SentenceTokens(i))]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// GraphStats counts the typed resources of an exported graph.
type GraphStats struct {
	Triples   int
	Contexts  int
	Sentences int
	Words     int
	Entities  int
}

// AggregateGraph counts the resources of g by rdf:type. An entity
// resource carries nif:Span next to nif:EntityOccurrence, only the
// occurrence type is counted.
func AggregateGraph(g *graph.Graph) GraphStats {
	gs := GraphStats{Triples: g.Len()}

	for _, t := range g.Triples() {
		if t.Pred.String() != nif.PropType {
			continue
		}

		if t.Obj.Type() != rdf.TermIRI {
			continue
		}

		switch t.Obj.String() {
		case nif.ClassContext:
			gs.Contexts++
		case nif.ClassSentence:
			gs.Sentences++
		case nif.ClassWord:
			gs.Words++
		case nif.ClassEntityOccurrence:
			gs.Entities++
		}
	}

	return gs
}
