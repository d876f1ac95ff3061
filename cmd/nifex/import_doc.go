package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/storage/filesystem"
	"github.com/revelaction/nifex/storage/sqlite/zombiezen"
)

func importDocCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import-doc",
		Usage: "import a directory of document JSON files into a SQLite repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "source `DIR`",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "target SQLite `FILE`",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return importDocAction(c.String("from"), c.String("to"), ui)
		},
	}
}

func importDocAction(from, to string, ui UI) error {
	src, err := filesystem.NewDocStore(from)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(to)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, "docs.sql"); err != nil {
		return fmt.Errorf("failed to create docs schema: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", from)
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
			return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
	return nil
}
