package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/abilityroll/chart"
	"github.com/rubiojr/abilityroll/dice"
	"github.com/rubiojr/abilityroll/logger"
	"github.com/rubiojr/abilityroll/metrics"
	"github.com/rubiojr/abilityroll/report"
	"github.com/rubiojr/abilityroll/stats"
)

// options are the validated inputs of one run.
type options struct {
	rule        dice.Rule
	iterations  int
	seed        *int64
	plotFile    string
	metricsFile string
	format      report.Format
	color       bool
}

func rollAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("%w: missing rule (usage: abilityroll [flags] <rule>)", ErrInvalidArgument)
	}
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}

	cfg, err := logger.LoadConfig()
	if err != nil {
		return err
	}
	log, closer := logger.New(cfg, stderr(cmd))
	defer closer.Close()

	return run(cmd, opts, log)
}

func parseOptions(cmd *cli.Command) (options, error) {
	if cmd.NArg() > 1 {
		return options{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidArgument, cmd.Args().Tail())
	}
	rule, err := dice.ParseRule(cmd.Args().First())
	if err != nil {
		return options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	iterations := cmd.Int("num_iterations")
	if iterations < 0 {
		return options{}, fmt.Errorf("%w: --num_iterations must be >= 0, got %d", ErrInvalidArgument, iterations)
	}

	format, err := report.ParseFormat(cmd.String("format"))
	if err != nil {
		return options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	opts := options{
		rule:        rule,
		iterations:  iterations,
		plotFile:    cmd.String("plot_file"),
		metricsFile: cmd.String("metrics_file"),
		format:      format,
	}
	if opts.plotFile == "" {
		return options{}, fmt.Errorf("%w: --plot_file must not be empty", ErrInvalidArgument)
	}
	if cmd.IsSet("seed") {
		seed := cmd.Int64("seed")
		opts.seed = &seed
	}
	if !cmd.Bool("no-color") {
		if f, ok := stdout(cmd).(*os.File); ok {
			opts.color = report.AutoColor(f)
		}
	}
	return opts, nil
}

// run simulates, analyzes and hands the results to the report, chart and
// metrics writers. Nothing is written if the statistics are undefined.
func run(cmd *cli.Command, opts options, log *slog.Logger) error {
	log = log.With("rule", opts.rule.String(), "iterations", opts.iterations)

	var src dice.Source
	if opts.seed != nil {
		log.Debug("seeding generator", "seed", *opts.seed)
		src = dice.NewSource(*opts.seed)
	} else {
		src = dice.RandomSource()
	}

	start := time.Now()
	table := dice.Simulate(src, opts.rule, opts.iterations)
	log.Debug("simulation finished", "scores", table.Total(), "distinct", len(table), "elapsed", time.Since(start))

	rows, summary, err := stats.Analyze(table)
	if err != nil {
		return fmt.Errorf("analyzing %s rolls: %w", opts.rule, err)
	}
	log.Debug("analysis finished", "mean", summary.Mean, "mode", summary.Mode, "stddev", summary.StdDev)

	res := report.Result{
		Rule:       opts.rule,
		Iterations: opts.iterations,
		Seed:       opts.seed,
		Rows:       rows,
		Summary:    summary,
	}
	out := stdout(cmd)
	if err := report.Write(out, res, opts.format, opts.color); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if err := chart.Save(opts.plotFile, rows, summary.Mean, opts.iterations); err != nil {
		return err
	}
	log.Info("chart written", "path", opts.plotFile)

	if opts.metricsFile != "" {
		if err := metrics.WriteTextfile(opts.metricsFile, opts.rule, rows, summary); err != nil {
			return err
		}
		log.Info("metrics written", "path", opts.metricsFile)
	}

	// Machine-readable formats keep stdout clean.
	if opts.format != report.Text {
		out = stderr(cmd)
	}
	return report.Done(out, opts.plotFile, opts.color)
}
