package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func labelsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "labels",
		Usage:     "list the labels of the repository documents",
		ArgsUsage: "[match]",
		Action: func(c *cli.Context) error {
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

			labels, err := repo.Labels(c.Args().First())
			if err != nil {
				return err
			}

			if len(labels) > 0 {
				fmt.Fprintln(ui.Out, strings.Join(labels, ", "))
			}

			return nil
		},
	}
}
