package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/config"
	"github.com/revelaction/nifex/export"
	"github.com/revelaction/nifex/graph"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

// set at build time:
//
//	go build -ldflags "-X main.BuildTag=v0.2.0 -X main.BuildCommit=$(git rev-parse --short HEAD)"
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "nifex: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "nifex",
		Usage:     "export NLP pipeline annotations as NIF 2.1 RDF",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "doc-path",
				Aliases: []string{"d"},
				Usage:   "document repository `PATH`: a directory of JSON files or a SQLite database",
				EnvVars: []string{"NIFEX_DOC_PATH"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration `FILE`",
				EnvVars: []string{"NIFEX_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			convertCommand(ui),
			docCommand(ui),
			labelsCommand(ui),
			statCommand(ui),
			inspectCommand(ui),
			ingestCommand(ui),
			importDocCommand(ui),
			exportDocCommand(ui),
			versionCommand(ui),
		},
	}
}

// loadConfig reads the configuration file named by --config. Without
// the flag every configuration field stays at its zero value.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		return &config.Config{}, nil
	}

	return config.Load(path)
}

// docPath resolves the repository path, the flag wins over the
// configuration file.
func docPath(c *cli.Context, cfg *config.Config) string {
	if p := c.String("doc-path"); p != "" {
		return p
	}

	return cfg.DocPath
}

// newExporter builds the exporter from flags and configuration, flags
// win.
func newExporter(c *cli.Context, cfg *config.Config) (*export.Exporter, error) {
	e := export.NewExporter()

	if base := stringOr(c, "base", cfg.BaseURI); base != "" {
		e.BaseURI = base
	}

	e.ClassBase = stringOr(c, "class-base", cfg.ClassBase)

	if c.Bool("no-text") || cfg.NoText {
		e.FullText = false
	}

	names := c.StringSlice("layer")
	if len(names) == 0 {
		names = cfg.Layers
	}

	if len(names) > 0 {
		layers, err := export.ParseLayers(names)
		if err != nil {
			return nil, err
		}
		e.Layers = layers
	}

	return e, nil
}

// newFormat resolves the serialization format, N-Triples when neither
// flag nor configuration name one.
func newFormat(c *cli.Context, cfg *config.Config) (graph.Format, error) {
	name := stringOr(c, "format", cfg.Format)
	if name == "" {
		return graph.NTriples, nil
	}

	return graph.ParseFormat(name)
}

func stringOr(c *cli.Context, name, fallback string) string {
	if v := c.String(name); v != "" {
		return v
	}

	return fallback
}

// bindConfigPrefixes adds the configured namespace bindings in stable
// order.
func bindConfigPrefixes(g *graph.Graph, cfg *config.Config) {
	names := make([]string, 0, len(cfg.Prefixes))
	for name := range cfg.Prefixes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g.Bind(name, cfg.Prefixes[name])
	}
}
