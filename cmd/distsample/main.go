package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/NileshArnaiya/statistics-interactive-course/internal/config"
	"github.com/NileshArnaiya/statistics-interactive-course/internal/logging"
	"github.com/NileshArnaiya/statistics-interactive-course/internal/presenter"
	"github.com/NileshArnaiya/statistics-interactive-course/pkg/distribution"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("sampling failed")
	}
}

func run(cfg *config.Config, out io.Writer) error {
	log.Debug().Msg("configuration of the run:\n" + cfg.ToString())

	params := cfg.Params()
	seq, err := distribution.Sample(cfg.Kind, params, cfg.Scale, cfg.Bound)
	if err != nil {
		return err
	}

	if err := presenter.PrintTable(out, cfg.Kind, seq); err != nil {
		return err
	}

	moments, err := distribution.Describe(cfg.Kind, params)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nmean: %.4f  variance: %.4f  std-dev: %.4f\n", moments.Mean, moments.Variance, moments.StdDev)
	if peak, ok := seq.Peak(); ok {
		fmt.Fprintf(out, "peak: y=%.4f at x=%g\n", peak.Y, peak.X)
	}

	if cfg.CSVOutput != "" {
		if err := presenter.SaveSequenceToCSV(seq, cfg.CSVOutput); err != nil {
			return fmt.Errorf("saving csv: %w", err)
		}
		log.Info().Str("file", cfg.CSVOutput).Msg("points saved")
	}
	if cfg.ChartOutput != "" {
		title := fmt.Sprintf("%v distribution", cfg.Kind)
		if err := presenter.GenerateChart(cfg.ChartOutput, title, cfg.Kind, seq); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		log.Info().Str("file", cfg.ChartOutput).Msg("chart saved")
	}
	return nil
}
