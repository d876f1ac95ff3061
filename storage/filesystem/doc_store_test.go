package filesystem

import (
	"testing"

	"github.com/revelaction/nifex/annotation"
)

func testStore(t *testing.T) *DocStore {
	t.Helper()

	store, err := NewDocStore(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	docs := []annotation.Doc{
		{
			Title:  "obama",
			Lang:   "en",
			Labels: []string{"news", "politics"},
			Text:   "Barack Obama visited Paris.",
			Ents:   []annotation.Entity{{Start: 0, End: 12, Label: "PERSON"}},
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

	// metadata only
	if docs[0].Text != "" {
		t.Fatalf("expected no text in the listing, got %q", docs[0].Text)
	}

	if docs[0].Title != "obama" {
		t.Fatalf("expected title obama, got %q", docs[0].Title)
	}
}

func TestListByLabel(t *testing.T) {
	store := testStore(t)

	docs, err := store.List("nov")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(docs))
	}

	if docs[0].Title != "quijote" {
		t.Fatalf("expected quijote, got %q", docs[0].Title)
	}
}

func TestReadRoundTrip(t *testing.T) {
	store := testStore(t)

	doc, err := store.Read(0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if doc.Text != "Barack Obama visited Paris." {
		t.Fatalf("expected the text back, got %q", doc.Text)
	}

	if len(doc.Ents) != 1 || doc.Ents[0].Label != "PERSON" {
		t.Fatalf("expected the entity back, got %+v", doc.Ents)
	}

	if doc.Id != 0 {
		t.Fatalf("expected id 0, got %d", doc.Id)
	}
}

func TestReadOutOfRange(t *testing.T) {
	store := testStore(t)

	if _, err := store.Read(9); err == nil {
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
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	if labels[0] != "news" || labels[1] != "novel" || labels[2] != "politics" {
		t.Fatalf("expected sorted labels, got %v", labels)
	}

	labels, err = store.Labels("pol")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(labels) != 1 || labels[0] != "politics" {
		t.Fatalf("expected politics, got %v", labels)
	}
}

func TestWriteRequiresTitle(t *testing.T) {
	store := testStore(t)

	if err := store.Write(annotation.Doc{Text: "x"}); err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestWriteOverwrite(t *testing.T) {
	store := testStore(t)

	if err := store.Write(annotation.Doc{Title: "obama", Text: "changed"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	docs, err := store.List("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 docs after overwrite, got %d", len(docs))
	}

	doc, err := store.Read(0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if doc.Text != "changed" {
		t.Fatalf("expected the overwritten text, got %q", doc.Text)
	}
}
