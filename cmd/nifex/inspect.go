package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/knakk/rdf"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/config"
	"github.com/revelaction/nifex/export"
	"github.com/revelaction/nifex/file"
	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/inspect"
	"github.com/revelaction/nifex/render"
)

func inspectCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "interactive triple pattern queries over an exported graph",
		ArgsUsage: "<graph file | docID>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 200,
				Usage: "triples rendered per query, 0 renders all",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "plain output",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "run one `PATTERN` and exit instead of starting the prompt",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "with --query, write the matching triples as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			return inspectAction(c, ui)
		},
	}
}

func inspectAction(c *cli.Context, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return errors.New("expected one graph file or document id")
	}

	arg := c.Args().First()

	var g *graph.Graph
	if docId, convErr := strconv.Atoi(arg); convErr == nil {
		g, err = inspectGraphFromRepo(c, cfg, docId)
	} else {
		g, err = inspectGraphFromFile(arg)
	}
	if err != nil {
		return err
	}

	bindConfigPrefixes(g, cfg)

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !c.Bool("no-color")
	r.HasPrefix = true
	r.Use(g)

	h := inspect.NewHandler(g, r)
	h.Limit = c.Int("limit")

	if q := c.String("query"); q != "" {
		return inspectQuery(c, h, g, q, ui)
	}

	return h.Run()
}

// inspectQuery runs one pattern non interactively.
func inspectQuery(c *cli.Context, h *inspect.Handler, g *graph.Graph, q string, ui UI) error {
	pattern, err := inspect.ParsePattern(g.Prefixes(), q)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		matched := []rdf.Triple{}
		for _, t := range g.Triples() {
			if pattern.Match(t) {
				matched = append(matched, t)
			}
		}

		return render.NewJSONRenderer(ui.Out).Render(matched)
	}

	n := h.Query(pattern)
	fmt.Fprintf(ui.Out, "%d triples\n", n)

	return nil
}

// inspectGraphFromFile loads a serialized graph. The file carries no
// namespace bindings, the vocabulary set is bound for display.
func inspectGraphFromFile(path string) (*graph.Graph, error) {
	rc, f, err := file.OpenGraph(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := graph.Read(rc, f)
	if err != nil {
		return nil, err
	}

	export.BindPrefixes(g)
	return g, nil
}

// inspectGraphFromRepo exports a repository document in memory.
func inspectGraphFromRepo(c *cli.Context, cfg *config.Config, docId int) (*graph.Graph, error) {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, docPath(c, cfg))
	if err != nil {
		return nil, err
	}

	e, err := newExporter(c, cfg)
	if err != nil {
		return nil, err
	}

	doc, err := repo.Read(docId)
	if err != nil {
		return nil, err
	}
	doc.Id = docId

	return e.ExportDoc(doc)
}
