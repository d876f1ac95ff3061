package render

import (
	"encoding/json"
	"io"

	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/nif"
)

// TripleJSON is the JSON shape of one rendered triple. Lang and Type
// carry the language tag or datatype of a literal object; the
// xsd:string default is dropped.
type TripleJSON struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Lang      string `json:"lang,omitempty"`
	Type      string `json:"type,omitempty"`
}

// JSONRenderer writes triples as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the triples as a JSON array.
func (r *JSONRenderer) Render(triples []rdf.Triple) error {
	rows := make([]TripleJSON, 0, len(triples))
	for _, t := range triples {
		rows = append(rows, row(t))
	}

	return json.NewEncoder(r.W).Encode(rows)
}

func row(t rdf.Triple) TripleJSON {
	tj := TripleJSON{
		Subject:   t.Subj.String(),
		Predicate: t.Pred.String(),
		Object:    t.Obj.String(),
	}

	if lit, ok := t.Obj.(rdf.Literal); ok {
		tj.Lang = lit.Lang()
		if dt := lit.DataType.String(); tj.Lang == "" && dt != nif.TypeString {
			tj.Type = dt
		}
	}

	return tj
}
