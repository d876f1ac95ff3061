package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/batch"
	"github.com/revelaction/nifex/config"
	"github.com/revelaction/nifex/export"
	"github.com/revelaction/nifex/file"
	"github.com/revelaction/nifex/graph"
)

func convertCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "export documents as NIF RDF",
		ArgsUsage: "[doc.json | docID]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "serialization `FORMAT`: nt, ttl or jsonld",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output `PATH`, a directory with --all; default standard output",
			},
			&cli.StringFlag{
				Name:  "base",
				Usage: "base `URI` for generated resources",
			},
			&cli.StringFlag{
				Name:  "class-base",
				Usage: "namespace `URI` for entity class IRIs",
			},
			&cli.StringSliceFlag{
				Name:  "layer",
				Usage: "annotation `LAYER` to export, repeatable; default all layers of the document",
			},
			&cli.BoolFlag{
				Name:  "no-text",
				Usage: "omit the full document text",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "convert every document of the repository",
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "with --all, convert only documents labeled `MATCH`",
			},
			&cli.BoolFlag{
				Name:    "compress",
				Aliases: []string{"x"},
				Usage:   "xz compress the output files",
			},
		},
		Action: func(c *cli.Context) error {
			return convertAction(c, ui)
		},
	}
}

func convertAction(c *cli.Context, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	e, err := newExporter(c, cfg)
	if err != nil {
		return err
	}

	f, err := newFormat(c, cfg)
	if err != nil {
		return err
	}

	compress := c.Bool("compress") || cfg.Compress

	if c.Bool("all") {
		return convertAll(c, cfg, e, f, compress, ui)
	}

	if c.NArg() != 1 {
		return errors.New("expected one document file or id, or --all")
	}

	arg := c.Args().First()

	// a plain integer selects a repository document
	if docId, convErr := strconv.Atoi(arg); convErr == nil {
		return convertRepoDoc(c, cfg, e, f, docId, compress, ui)
	}

	doc, err := file.ReadDoc(arg)
	if err != nil {
		return err
	}

	return convertDoc(c, cfg, e, f, doc, compress, ui)
}

// convertDoc exports one document to --out or standard output.
func convertDoc(c *cli.Context, cfg *config.Config, e *export.Exporter, f graph.Format, doc annotation.Doc, compress bool, ui UI) error {
	g, err := e.ExportDoc(doc)
	if err != nil {
		return err
	}

	bindConfigPrefixes(g, cfg)

	out := c.String("out")
	if out == "" {
		if compress {
			return errors.New("--compress needs --out")
		}

		return g.Write(ui.Out, f)
	}

	if compress && !strings.HasSuffix(out, ".xz") {
		out += ".xz"
	}

	return file.WriteGraph(out, g, f)
}

func convertRepoDoc(c *cli.Context, cfg *config.Config, e *export.Exporter, f graph.Format, docId int, compress bool, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, docPath(c, cfg))
	if err != nil {
		return err
	}

	runner := batch.New(e, repo).WithDocID(docId)
	_, err = runner.Run(func(doc annotation.Doc, g *graph.Graph) error {
		bindConfigPrefixes(g, cfg)

		out := c.String("out")
		if out == "" {
			if compress {
				return errors.New("--compress needs --out")
			}

			return g.Write(ui.Out, f)
		}

		if compress && !strings.HasSuffix(out, ".xz") {
			out += ".xz"
		}

		return file.WriteGraph(out, g, f)
	})

	return err
}

func convertAll(c *cli.Context, cfg *config.Config, e *export.Exporter, f graph.Format, compress bool, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, docPath(c, cfg))
	if err != nil {
		return err
	}

	outDir := c.String("out")
	if outDir == "" {
		outDir = "."
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	label := c.String("label")
	docs, err := repo.List(label)
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	runner := batch.New(e, repo).WithLabel(label)
	n, err := runner.Run(func(doc annotation.Doc, g *graph.Graph) error {
		bindConfigPrefixes(g, cfg)

		title := doc.Title
		if title == "" {
			title = fmt.Sprintf("doc-%d", doc.Id)
		}

		if err := file.WriteGraph(file.GraphPath(outDir, title, f, compress), g, f); err != nil {
			return err
		}

		bar.Incr()
		return nil
	})
	uiprogress.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully converted %d docs to %s\n", n, outDir)
	return nil
}
