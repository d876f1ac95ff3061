package inspect

import (
	"testing"

	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/nif"
)

func testPrefixes() []graph.Prefix {
	g := graph.New()
	g.Bind("nif", nif.NIF)
	g.Bind("rdf", nif.RDF)

	return g.Prefixes()
}

func TestParsePatternWildcards(t *testing.T) {
	p, err := ParsePattern(testPrefixes(), "? ? ?")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if !p.Subj.Any || !p.Pred.Any || !p.Obj.Any {
		t.Fatalf("expected all wildcard fields, got %+v", p)
	}
}

func TestParsePatternFieldCount(t *testing.T) {
	if _, err := ParsePattern(testPrefixes(), "? ?"); err == nil {
		t.Fatal("expected error for 2 fields")
	}

	if _, err := ParsePattern(testPrefixes(), ""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParsePatternPrefixedName(t *testing.T) {
	p, err := ParsePattern(testPrefixes(), "? nif:anchorOf ?")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if !p.Pred.IsIRI {
		t.Fatal("expected IRI predicate field")
	}

	if p.Pred.Value != nif.PropAnchorOf {
		t.Fatalf("expected %q, got %q", nif.PropAnchorOf, p.Pred.Value)
	}
}

func TestParsePatternUnknownPrefix(t *testing.T) {
	if _, err := ParsePattern(testPrefixes(), "? foo:bar ?"); err == nil {
		t.Fatal("expected error for unknown prefix")
	}
}

func TestParsePatternBracketedIRI(t *testing.T) {
	p, err := ParsePattern(testPrefixes(), "<http://example.org/doc#char=0,6> ? ?")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if !p.Subj.IsIRI {
		t.Fatal("expected IRI subject field")
	}

	if p.Subj.Value != "http://example.org/doc#char=0,6" {
		t.Fatalf("expected bare IRI value, got %q", p.Subj.Value)
	}
}

func TestParsePatternBareIRI(t *testing.T) {
	p, err := ParsePattern(testPrefixes(), "http://example.org/doc#context ? ?")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if !p.Subj.IsIRI {
		t.Fatal("expected IRI subject field")
	}
}

func TestParsePatternLiterals(t *testing.T) {
	p, err := ParsePattern(testPrefixes(), `? ? "Barack Obama"`)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if p.Obj.IsIRI {
		t.Fatal("expected literal object field")
	}

	if p.Obj.Value != "Barack Obama" {
		t.Fatalf("expected quoted value without quotes, got %q", p.Obj.Value)
	}

	p, err = ParsePattern(testPrefixes(), "? ? Paris")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if p.Obj.Value != "Paris" {
		t.Fatalf("expected bare literal value, got %q", p.Obj.Value)
	}
}

func TestMatch(t *testing.T) {
	subj, _ := rdf.NewIRI("http://example.org/doc#char=0,6")
	pred, _ := rdf.NewIRI(nif.PropAnchorOf)
	obj, _ := rdf.NewLangLiteral("Barack", "en")
	triple := rdf.Triple{Subj: subj, Pred: pred, Obj: obj}

	p, err := ParsePattern(testPrefixes(), `? nif:anchorOf "Barack"`)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if !p.Match(triple) {
		t.Fatal("expected pattern to match")
	}

	p, err = ParsePattern(testPrefixes(), `? nif:anchorOf "Obama"`)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if p.Match(triple) {
		t.Fatal("expected pattern to not match")
	}

	p, err = ParsePattern(testPrefixes(), "? rdf:type ?")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if p.Match(triple) {
		t.Fatal("expected predicate mismatch")
	}
}

func TestMatchIRIFieldRejectsLiteral(t *testing.T) {
	subj, _ := rdf.NewIRI("http://example.org/doc#char=0,6")
	pred, _ := rdf.NewIRI(nif.PropAnchorOf)
	obj, _ := rdf.NewLangLiteral("Barack", "en")
	triple := rdf.Triple{Subj: subj, Pred: pred, Obj: obj}

	// the object field names an IRI, the object term is a literal
	p, err := ParsePattern(testPrefixes(), "? ? <Barack>")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if p.Match(triple) {
		t.Fatal("expected IRI field to reject a literal term")
	}
}
