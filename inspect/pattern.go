package inspect

import (
	"fmt"
	"strings"

	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/graph"
)

// Wildcard is the pattern field matching any term.
const Wildcard = "?"

// Field matches one term position of a triple: any term, an exact IRI
// or an exact literal value.
type Field struct {
	Any   bool
	IsIRI bool
	Value string
}

// Pattern matches triples position by position.
type Pattern struct {
	Subj Field
	Pred Field
	Obj  Field
}

// ParsePattern parses a whitespace separated triple pattern of exactly
// three fields:
//
//	? nif:anchorOf "Barack"
//
// A field is the wildcard `?`, an IRI in angle brackets, a prefixed
// name expanded against the bindings, a bare http(s) IRI, or a literal
// value, quoted or bare.
func ParsePattern(prefixes []graph.Prefix, in string) (Pattern, error) {
	tokens := strings.Fields(in)
	if len(tokens) != 3 {
		return Pattern{}, fmt.Errorf("expected 3 fields (subject predicate object), got %d", len(tokens))
	}

	var p Pattern
	var err error
	if p.Subj, err = parseField(prefixes, tokens[0]); err != nil {
		return Pattern{}, err
	}

	if p.Pred, err = parseField(prefixes, tokens[1]); err != nil {
		return Pattern{}, err
	}

	if p.Obj, err = parseField(prefixes, tokens[2]); err != nil {
		return Pattern{}, err
	}

	return p, nil
}

func parseField(prefixes []graph.Prefix, tok string) (Field, error) {
	if tok == Wildcard {
		return Field{Any: true}, nil
	}

	if strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") && len(tok) >= 2 {
		return Field{IsIRI: true, Value: tok[1 : len(tok)-1]}, nil
	}

	if strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) && len(tok) >= 2 {
		return Field{Value: tok[1 : len(tok)-1]}, nil
	}

	if strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "https://") {
		return Field{IsIRI: true, Value: tok}, nil
	}

	parts := strings.SplitN(tok, ":", 2)
	if len(parts) == 2 {
		for _, p := range prefixes {
			if p.Name == parts[0] {
				return Field{IsIRI: true, Value: p.NS + parts[1]}, nil
			}
		}

		return Field{}, fmt.Errorf("unknown prefix %q", parts[0])
	}

	return Field{Value: tok}, nil
}

// Match reports whether the triple satisfies the pattern.
func (p Pattern) Match(t rdf.Triple) bool {
	return p.Subj.match(t.Subj) && p.Pred.match(t.Pred) && p.Obj.match(t.Obj)
}

func (f Field) match(term rdf.Term) bool {
	if f.Any {
		return true
	}

	if f.IsIRI {
		return term.Type() == rdf.TermIRI && term.String() == f.Value
	}

	return term.Type() == rdf.TermLiteral && term.String() == f.Value
}
