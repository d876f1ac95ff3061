package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nifex/config"
	"github.com/revelaction/nifex/file"
	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/stat"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "annotation statistics over documents or an exported graph file",
		ArgsUsage: "[docID | graph file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "label",
				Usage: "aggregate only documents labeled `MATCH`",
			},
			&cli.BoolFlag{
				Name:  "dis",
				Usage: "print the tokens per sentence distribution",
			},
		},
		Action: func(c *cli.Context) error {
			return statAction(c, ui)
		},
	}
}

func statAction(c *cli.Context, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if c.NArg() == 1 {
		arg := c.Args().First()
		if docId, convErr := strconv.Atoi(arg); convErr == nil {
			return statDoc(c, cfg, docId, ui)
		}

		return statGraph(arg, ui)
	}

	return statAll(c, cfg, ui)
}

func statDoc(c *cli.Context, cfg *config.Config, docId int, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, docPath(c, cfg))
	if err != nil {
		return err
	}

	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(doc)

	printStats(c, hdl.Get(), ui)
	return nil
}

func statAll(c *cli.Context, cfg *config.Config, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, docPath(c, cfg))
	if err != nil {
		return err
	}

	docs, err := repo.List(c.String("label"))
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, meta := range docs {
		doc, err := repo.Read(meta.Id)
		if err != nil {
			return fmt.Errorf("doc %d: %w", meta.Id, err)
		}

		hdl.Aggregate(doc)
	}

	printStats(c, hdl.Get(), ui)
	return nil
}

// statGraph counts the typed resources of a serialized graph file.
func statGraph(path string, ui UI) error {
	rc, f, err := file.OpenGraph(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	g, err := graph.Read(rc, f)
	if err != nil {
		return err
	}

	gs := stat.AggregateGraph(g)
	fmt.Fprintf(ui.Out, "Triples %d, contexts %d, sentences %d, words %d, entities %d\n",
		gs.Triples, gs.Contexts, gs.Sentences, gs.Words, gs.Entities)

	return nil
}

func printStats(c *cli.Context, stats stat.Stats, ui UI) {
	fmt.Fprintf(ui.Out, "Docs %d, sentences %d, tokens %d, entities %d, tokens per sentence %d\n",
		stats.NumDocs, stats.NumSentences, stats.NumTokens, stats.NumEntities, stats.TokensPerSentenceMean)

	if !c.Bool("dis") {
		return
	}

	lengths := make([]int, 0, len(stats.TokensPerSentenceDis))
	for l := range stats.TokensPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Fprintf(ui.Out, "%4d tokens: %d sentences\n", l, stats.TokensPerSentenceDis[l])
	}
}
