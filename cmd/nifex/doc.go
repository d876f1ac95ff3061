package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/render"
)

func docCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "list repository documents or preview one with its entities",
		ArgsUsage: "[docID]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "label",
				Usage: "list only documents labeled `MATCH`",
			},
			&cli.BoolFlag{
				Name:    "entities",
				Aliases: []string{"e"},
				Usage:   "list the entity mentions of the document",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "plain output",
			},
		},
		Action: func(c *cli.Context) error {
			return docAction(c, ui)
		},
	}
}

func docAction(c *cli.Context, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, docPath(c, cfg))
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !c.Bool("no-color")

	if c.NArg() == 0 {
		docs, err := repo.List(c.String("label"))
		if err != nil {
			return err
		}

		for _, doc := range docs {
			r.DocLine(doc)
		}

		return nil
	}

	docId, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("not a document id: %s", c.Args().First())
	}

	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}
	doc.Id = docId

	r.Doc(doc)

	if c.Bool("entities") {
		fmt.Fprintln(ui.Out)
		r.Entities(doc)
	}

	return nil
}
