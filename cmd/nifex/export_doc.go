package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/storage/filesystem"
	"github.com/revelaction/nifex/storage/sqlite/zombiezen"
)

func exportDocCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "export-doc",
		Usage: "export a SQLite repository as a directory of document JSON files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "source SQLite `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "target `DIR`",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return exportDocAction(c.String("from"), c.String("to"), ui)
		},
	}
}

func exportDocAction(from, to string, ui UI) error {
	pool, err := zombiezen.NewPool(from)
	if err != nil {
		return err
	}
	defer pool.Close()
	src := zombiezen.NewDocStore(pool)

	// Ensure target directory exists
	if err := os.MkdirAll(to, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewDocStore(to)
	if err != nil {
		return err
	}

	docs, err := src.List("")
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, meta := range docs {
		doc, err := src.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read doc %s (id %d): %w", meta.Title, meta.Id, err)
		}

		if err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, from, to)
	return nil
}
