package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/abilityroll/chart"
)

// ErrInvalidArgument marks bad command line input. It is reported before
// any simulation runs.
var ErrInvalidArgument = errors.New("invalid argument")

// Execute runs the abilityroll CLI with the given version string.
func Execute(version string) {
	cmd := New(version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// New builds the command tree. Output goes to os.Stdout and os.Stderr
// unless Writer and ErrWriter are replaced before Run.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:                   "abilityroll",
		Usage:                  "Simulate ability score rolling methods and chart the results",
		Version:                version,
		ArgsUsage:              "<rule>",
		UseShortOptionHandling: true,
		Writer:                 os.Stdout,
		ErrWriter:              os.Stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "num_iterations",
				Aliases: []string{"n"},
				Usage:   "Number of characters to roll",
				Value:   10000,
				Sources: cli.EnvVars("ABILITYROLL_NUM_ITERATIONS"),
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Seed for the random generator (random when unset)",
			},
			&cli.StringFlag{
				Name:  "plot_file",
				Usage: "Where to write the distribution chart",
				Value: chart.DefaultFile,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Report format: text, json or yaml",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:  "metrics_file",
				Usage: "Also write Prometheus metrics to this file",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Action: rollAction,
		Commands: []*cli.Command{
			{
				Name:   "rules",
				Usage:  "List the available roll rules",
				Action: rulesAction,
			},
		},
	}
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
