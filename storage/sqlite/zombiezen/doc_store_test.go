package zombiezen

import (
	"path/filepath"
	"testing"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/nifex/annotation"
)

func testPool(t *testing.T) *sqlitex.Pool {
	t.Helper()

	pool, err := NewPool(filepath.Join(t.TempDir(), "docs.sqlite"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Cleanup(func() { pool.Close() })

	if err := CreateSchemas(pool, "docs.sql"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	return pool
}

func testStore(t *testing.T) *DocStore {
	t.Helper()

	store := NewDocStore(testPool(t))

	docs := []annotation.Doc{
		{
			Title:  "obama",
			URI:    "http://corpus.example.org/obama#",
			Lang:   "en",
			Labels: []string{"news", "politics"},
			Text:   "Barack Obama visited Paris.",
			Sents:  []annotation.Sentence{{Start: 0, End: 27}},
			Tokens: []annotation.Token{
				{Start: 0, End: 6, Text: "Barack", Lemma: "Barack", Pos: "PROPN", Head: 2, Dep: "nsubj"},
				{Start: 7, End: 12, Text: "Obama", Lemma: "Obama", Pos: "PROPN", Head: 0, Dep: "flat"},
				{Start: 13, End: 20, Text: "visited", Lemma: "visit", Pos: "VERB", Head: 2, Dep: "ROOT"},
				{Start: 21, End: 26, Text: "Paris", Lemma: "Paris", Pos: "PROPN", Head: 2, Dep: "obj"},
				{Start: 26, End: 27, Text: ".", Lemma: ".", Pos: "PUNCT", Head: 2, Dep: "punct"},
			},
			Ents: []annotation.Entity{
				{Start: 0, End: 12, Label: "PERSON"},
				{Start: 21, End: 26, Label: "GPE"},
			},
		},
		{
			Title:  "quijote",
			Lang:   "es",
			Labels: []string{"novel"},
			Text:   "En un lugar de la Mancha.",
		},
	}

	for _, d := range docs {
		if err := store.Write(d); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	return store
}

func TestListAll(t *testing.T) {
	store := testStore(t)

	docs, err := store.List("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}

	// ordered by title, metadata only
	if docs[0].Title != "obama" || docs[1].Title != "quijote" {
		t.Fatalf("expected title order, got %q, %q", docs[0].Title, docs[1].Title)
	}

	if docs[0].Text != "" {
		t.Fatalf("expected no text in the listing, got %q", docs[0].Text)
	}

	if len(docs[0].Labels) != 2 {
		t.Fatalf("expected 2 labels, got %v", docs[0].Labels)
	}
}

func TestListByLabel(t *testing.T) {
	store := testStore(t)

	docs, err := store.List("novel")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(docs) != 1 || docs[0].Title != "quijote" {
		t.Fatalf("expected quijote only, got %+v", docs)
	}
}

func TestReadRoundTrip(t *testing.T) {
	store := testStore(t)

	docs, err := store.List("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	doc, err := store.Read(docs[0].Id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if doc.Text != "Barack Obama visited Paris." {
		t.Fatalf("expected the text back, got %q", doc.Text)
	}

	if doc.URI != "http://corpus.example.org/obama#" {
		t.Fatalf("expected the URI back, got %q", doc.URI)
	}

	if len(doc.Sents) != 1 || len(doc.Tokens) != 5 || len(doc.Ents) != 2 {
		t.Fatalf("expected all layers back, got %d/%d/%d", len(doc.Sents), len(doc.Tokens), len(doc.Ents))
	}

	if doc.Tokens[2].Lemma != "visit" {
		t.Fatalf("expected lemma visit, got %q", doc.Tokens[2].Lemma)
	}

	if doc.Ents[1].Label != "GPE" {
		t.Fatalf("expected label GPE, got %q", doc.Ents[1].Label)
	}
}

func TestReadMissing(t *testing.T) {
	store := testStore(t)

	if _, err := store.Read(999); err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestLabels(t *testing.T) {
	store := testStore(t)

	labels, err := store.Labels("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %v", labels)
	}

	if labels[0] != "news" || labels[1] != "novel" || labels[2] != "politics" {
		t.Fatalf("expected sorted labels, got %v", labels)
	}

	labels, err = store.Labels("new")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(labels) != 1 || labels[0] != "news" {
		t.Fatalf("expected news, got %v", labels)
	}
}
