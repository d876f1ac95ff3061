// Package inspect runs an interactive triple pattern prompt over one
// exported graph. A query names subject, predicate and object, each
// either exact or the wildcard `?`; matching triples are rendered with
// the current renderer settings.
package inspect

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/knakk/rdf"

	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/nif"
	"github.com/revelaction/nifex/render"
)

type Handler struct {
	Graph    *graph.Graph
	Renderer *render.Renderer

	// Limit caps the number of triples rendered per query, 0 renders
	// all matches.
	Limit int
}

func NewHandler(g *graph.Graph, r *render.Renderer) *Handler {
	return &Handler{Graph: g, Renderer: r}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+F: Toggle prefix, Ctrl+X: Toggle color, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔍 ", h.completer(),
			prompt.OptionTitle("nifex inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Println("Prefix set to " + fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextColor()
					fmt.Println("Color set to " + fmt.Sprintf("%t", h.Renderer.HasColor))
				}}),
		)

		if in == "quit" {
			return nil
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		pattern, err := ParsePattern(h.Graph.Prefixes(), in)
		if err != nil {
			fmt.Printf("Error parsing pattern: %v\n", err)
			continue
		}

		n := h.Query(pattern)
		fmt.Printf("%d triples\n", n)
	}
}

// Query renders every triple matching p, up to Limit, and returns the
// full match count.
func (h *Handler) Query(p Pattern) int {
	n := 0
	for _, t := range h.Graph.Triples() {
		if !p.Match(t) {
			continue
		}

		n++
		if h.Limit > 0 && n > h.Limit {
			continue
		}

		h.Renderer.Triple(t)
	}

	return n
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {

	subjects, predicates, objects := h.terms()

	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		var candidates []prompt.Suggest
		switch len(strings.Split(befCursor, " ")) {
		case 1:
			candidates = subjects
		case 2:
			candidates = predicates
		case 3:
			candidates = objects
		default:
			return s
		}

		return prompt.FilterHasPrefix(candidates, in.GetWordBeforeCursor(), true)
	}
}

// terms collects the distinct completion candidates of the graph per
// pattern position: subject names, predicate names and class names,
// compacted against the bound prefixes.
func (h *Handler) terms() (subjects, predicates, objects []prompt.Suggest) {

	subjects = append(subjects, prompt.Suggest{Text: Wildcard, Description: "any subject"})
	predicates = append(predicates, prompt.Suggest{Text: Wildcard, Description: "any predicate"})
	objects = append(objects, prompt.Suggest{Text: Wildcard, Description: "any object"})

	seenSubj := map[string]struct{}{}
	seenPred := map[string]struct{}{}
	seenObj := map[string]struct{}{}

	for _, t := range h.Graph.Triples() {
		s := h.Graph.Compact(t.Subj.String())
		if _, ok := seenSubj[s]; !ok {
			seenSubj[s] = struct{}{}
			subjects = append(subjects, prompt.Suggest{Text: s})
		}

		p := h.Graph.Compact(t.Pred.String())
		if _, ok := seenPred[p]; !ok {
			seenPred[p] = struct{}{}
			predicates = append(predicates, prompt.Suggest{Text: p, Description: t.Pred.String()})
		}

		if t.Pred.String() != nif.PropType || t.Obj.Type() != rdf.TermIRI {
			continue
		}

		o := h.Graph.Compact(t.Obj.String())
		if _, ok := seenObj[o]; !ok {
			seenObj[o] = struct{}{}
			objects = append(objects, prompt.Suggest{Text: o})
		}
	}

	return subjects, predicates, objects
}
