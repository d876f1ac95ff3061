package stat

import (
	"testing"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/export"
)

func testDoc() annotation.Doc {
	return annotation.Doc{
		Lang: "en",
		Text: "Barack Obama visited Paris.",
		Sents: []annotation.Sentence{
			{Start: 0, End: 27},
		},
		Tokens: []annotation.Token{
			{Start: 0, End: 6, Text: "Barack", Head: -1},
			{Start: 7, End: 12, Text: "Obama", Head: -1},
			{Start: 13, End: 20, Text: "visited", Head: -1},
			{Start: 21, End: 26, Text: "Paris", Head: -1},
			{Start: 26, End: 27, Text: ".", Head: -1},
		},
		Ents: []annotation.Entity{
			{Start: 0, End: 12, Label: "PERSON"},
			{Start: 21, End: 26, Label: "GPE"},
		},
	}
}

func TestAggregate(t *testing.T) {
	h := NewHandler()
	h.Aggregate(testDoc())

	stats := h.Get()
	if stats.NumDocs != 1 {
		t.Errorf("expected 1 doc, got %d", stats.NumDocs)
	}

	if stats.NumSentences != 1 {
		t.Errorf("expected 1 sentence, got %d", stats.NumSentences)
	}

	if stats.NumTokens != 5 {
		t.Errorf("expected 5 tokens, got %d", stats.NumTokens)
	}

	if stats.NumEntities != 2 {
		t.Errorf("expected 2 entities, got %d", stats.NumEntities)
	}

	if stats.TokensPerSentenceMean != 5 {
		t.Errorf("expected mean 5, got %d", stats.TokensPerSentenceMean)
	}

	if stats.TokensPerSentenceDis[5] != 1 {
		t.Errorf("expected 1 sentence with 5 tokens, got %d", stats.TokensPerSentenceDis[5])
	}
}

func TestAggregateAccumulates(t *testing.T) {
	h := NewHandler()
	h.Aggregate(testDoc())
	h.Aggregate(testDoc())

	stats := h.Get()
	if stats.NumDocs != 2 {
		t.Errorf("expected 2 docs, got %d", stats.NumDocs)
	}

	if stats.NumSentences != 2 {
		t.Errorf("expected 2 sentences, got %d", stats.NumSentences)
	}

	if stats.NumTokens != 10 {
		t.Errorf("expected 10 tokens, got %d", stats.NumTokens)
	}

	if stats.TokensPerSentenceDis[5] != 2 {
		t.Errorf("expected 2 sentences with 5 tokens, got %d", stats.TokensPerSentenceDis[5])
	}
}

func TestAggregateEmptyDoc(t *testing.T) {
	h := NewHandler()
	h.Aggregate(annotation.Doc{Text: "no annotations here"})

	stats := h.Get()
	if stats.NumSentences != 0 {
		t.Errorf("expected 0 sentences, got %d", stats.NumSentences)
	}

	if stats.TokensPerSentenceMean != 0 {
		t.Errorf("expected mean 0, got %d", stats.TokensPerSentenceMean)
	}
}

func TestAggregateGraph(t *testing.T) {
	e := export.NewExporter()
	g, err := e.ExportDoc(testDoc())
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	gs := AggregateGraph(g)
	if gs.Triples != g.Len() {
		t.Errorf("expected %d triples, got %d", g.Len(), gs.Triples)
	}

	if gs.Contexts != 1 {
		t.Errorf("expected 1 context, got %d", gs.Contexts)
	}

	if gs.Sentences != 1 {
		t.Errorf("expected 1 sentence, got %d", gs.Sentences)
	}

	if gs.Words != 5 {
		t.Errorf("expected 5 words, got %d", gs.Words)
	}

	if gs.Entities != 2 {
		t.Errorf("expected 2 entities, got %d", gs.Entities)
	}
}
