package graph

import (
	"encoding/json"
	"io"

	"github.com/knakk/rdf"
)

const (
	rdfType   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	xsdString = "http://www.w3.org/2001/XMLSchema#string"
)

// writeJSONLD emits the graph as flattened JSON-LD: an @context with
// the bound prefixes and an @graph array with one node object per
// subject, in first-seen order. encoding/json sorts object keys, so
// equal graphs serialize identically.
func (g *Graph) writeJSONLD(w io.Writer) error {
	ctx := map[string]string{}
	for _, p := range g.prefixes {
		ctx[p.Name] = p.NS
	}

	nodes := []map[string]interface{}{}
	index := map[string]map[string]interface{}{}

	for _, t := range g.triples {
		id := subjectID(t.Subj)
		node, ok := index[id]
		if !ok {
			node = map[string]interface{}{"@id": g.Compact(id)}
			index[id] = node
			nodes = append(nodes, node)
		}

		pred := t.Pred.String()
		if pred == rdfType {
			if o, ok := t.Obj.(rdf.IRI); ok {
				node["@type"] = append(typeList(node), g.Compact(o.String()))
				continue
			}
		}

		k := g.Compact(pred)
		node[k] = append(valueList(node, k), g.object(t.Obj))
	}

	doc := map[string]interface{}{
		"@context": ctx,
		"@graph":   nodes,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(doc)
}

// object renders one RDF object as a JSON-LD value object or node
// reference.
func (g *Graph) object(o rdf.Object) interface{} {
	switch o.Type() {
	case rdf.TermLiteral:
		lit := o.(rdf.Literal)
		v := map[string]interface{}{"@value": lit.String()}

		if lit.Lang() != "" {
			v["@language"] = lit.Lang()
			return v
		}

		if dt := lit.DataType.String(); dt != "" && dt != xsdString {
			v["@type"] = g.Compact(dt)
		}

		return v
	case rdf.TermIRI:
		return map[string]interface{}{"@id": g.Compact(o.(rdf.IRI).String())}
	default:
		// blank node
		return map[string]interface{}{"@id": o.Serialize(rdf.NTriples)}
	}
}

func subjectID(s rdf.Subject) string {
	if iri, ok := s.(rdf.IRI); ok {
		return iri.String()
	}

	return s.Serialize(rdf.NTriples)
}

func typeList(node map[string]interface{}) []string {
	if v, ok := node["@type"].([]string); ok {
		return v
	}

	return nil
}

func valueList(node map[string]interface{}, k string) []interface{} {
	if v, ok := node[k].([]interface{}); ok {
		return v
	}

	return nil
}
