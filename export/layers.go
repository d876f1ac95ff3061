package export

import (
	"fmt"
	"strings"

	"github.com/revelaction/nifex/annotation"
)

// Layers selects the annotation layers the exporter emits. The zero
// value emits nothing.
type Layers struct {
	Tokens bool
	Pos    bool
	Lemma  bool
	Morph  bool
	Deps   bool
	Sents  bool
	NER    bool
}

// layerNames are the names accepted by ParseLayers, in display order.
var layerNames = []string{"tokens", "pos", "lemma", "morph", "deps", "sents", "ner"}

// DetectLayers infers the available layers from the annotations
// present on the document.
func DetectLayers(d annotation.Doc) *Layers {
	l := &Layers{
		Tokens: len(d.Tokens) > 0,
		Sents:  len(d.Sents) > 0,
		NER:    len(d.Ents) > 0,
	}

	for _, t := range d.Tokens {
		if t.Lemma != "" {
			l.Lemma = true
		}

		if t.Pos != "" {
			l.Pos = true
		}

		if t.Morph != "" {
			l.Morph = true
		}

		if t.Dep != "" {
			l.Deps = true
		}
	}

	return l
}

// ParseLayers builds a layer selection from layer names. The token
// dependent layers (pos, lemma, morph, deps) imply tokens.
func ParseLayers(names []string) (*Layers, error) {
	l := &Layers{}
	for _, name := range names {
		switch name {
		case "tokens":
			l.Tokens = true
		case "pos":
			l.Pos = true
			l.Tokens = true
		case "lemma":
			l.Lemma = true
			l.Tokens = true
		case "morph":
			l.Morph = true
			l.Tokens = true
		case "deps":
			l.Deps = true
			l.Tokens = true
		case "sents":
			l.Sents = true
		case "ner":
			l.NER = true
		default:
			return nil, fmt.Errorf("unknown layer %q, valid layers are: %s", name, strings.Join(layerNames, ", "))
		}
	}

	return l, nil
}

// Names returns the names of the enabled layers, in display order.
func (l *Layers) Names() []string {
	enabled := map[string]bool{
		"tokens": l.Tokens,
		"pos":    l.Pos,
		"lemma":  l.Lemma,
		"morph":  l.Morph,
		"deps":   l.Deps,
		"sents":  l.Sents,
		"ner":    l.NER,
	}

	names := []string{}
	for _, name := range layerNames {
		if enabled[name] {
			names = append(names, name)
		}
	}

	return names
}
