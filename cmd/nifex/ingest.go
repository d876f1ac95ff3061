package main

import (
	"encoding/json"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/file"
	"github.com/revelaction/nifex/ingest"
)

func ingestCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "ingest",
		Usage:     "rebuild a pipeline document from a NIF graph file",
		ArgsUsage: "<graph file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "document JSON `PATH`; default standard output",
			},
			&cli.BoolFlag{
				Name:  "store",
				Usage: "write the document into the repository instead",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "document `TITLE`, required with --store",
			},
		},
		Action: func(c *cli.Context) error {
			return ingestAction(c, ui)
		},
	}
}

func ingestAction(c *cli.Context, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return errors.New("expected one graph file")
	}

	rc, f, err := file.OpenGraph(c.Args().First())
	if err != nil {
		return err
	}
	defer rc.Close()

	doc, err := ingest.Doc(rc, f)
	if err != nil {
		return err
	}

	if c.Bool("store") {
		doc.Title = c.String("title")
		if doc.Title == "" {
			return errors.New("--store needs --title")
		}

		pool := &Pool{}
		defer pool.Close()

		repo, err := NewDocRepository(pool, docPath(c, cfg))
		if err != nil {
			return err
		}

		return repo.Write(doc)
	}

	if out := c.String("out"); out != "" {
		return file.WriteDoc(out, doc)
	}

	enc := json.NewEncoder(ui.Out)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
