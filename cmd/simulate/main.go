package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NileshArnaiya/statistics-interactive-course/internal/logging"
	"github.com/NileshArnaiya/statistics-interactive-course/pkg/distribution"
	"github.com/NileshArnaiya/statistics-interactive-course/pkg/simulate"
)

type options struct {
	kind   distribution.Kind
	params distribution.Params
	draws  int
	bins   int
	seed   uint64
}

func main() {
	defaults := distribution.DefaultParams()

	dist := flag.String("dist", "normal", "distribution to draw from")
	mean := flag.Float64("mean", defaults.Mean, "normal mean")
	stdDev := flag.Float64("std-dev", defaults.StdDev, "normal standard deviation")
	lambda := flag.Float64("lambda", defaults.Lambda, "poisson/exponential rate")
	n := flag.Int("n", defaults.N, "binomial trials")
	p := flag.Float64("p", defaults.P, "binomial success probability")
	df := flag.Int("df", defaults.DF, "chi-squared degrees of freedom")
	draws := flag.Int("draws", 10000, "number of draws")
	bins := flag.Int("bins", 20, "histogram bins")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	if err := logging.Setup(os.Stderr, "info"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	kind, err := distribution.ParseKind(*dist)
	if err != nil {
		log.Fatal().Err(err).Msg("bad distribution")
	}

	opts := options{
		kind:   kind,
		params: distribution.Params{Mean: *mean, StdDev: *stdDev, Lambda: *lambda, N: *n, P: *p, DF: *df},
		draws:  *draws,
		bins:   *bins,
		seed:   *seed,
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func run(opts options, out io.Writer) error {
	if opts.draws <= 0 || opts.bins <= 0 {
		return fmt.Errorf("draws and bins must be positive, got %d and %d", opts.draws, opts.bins)
	}
	sampler, err := simulate.NewSampler(opts.kind, opts.params, opts.seed)
	if err != nil {
		return err
	}
	log.Info().Stringer("kind", opts.kind).Int("draws", opts.draws).Uint64("seed", opts.seed).Msg("drawing")

	data := sampler.RandN(opts.draws)
	low, high := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		low = math.Min(low, v)
		high = math.Max(high, v)
	}
	if high == low {
		high = low + 1
	}

	hist, err := simulate.NewHistogram(simulate.UniformBins(low, high, opts.bins))
	if err != nil {
		return err
	}
	hist.CalculateHistogram(data)

	fmt.Fprintf(out, "Histogram of %d draws (%d bins):\n", opts.draws, opts.bins)
	if err := hist.Print(out, 50); err != nil {
		return err
	}

	sum := sampler.Summarize(data)
	fmt.Fprintf(out, "\nsample mean: %.4f (theory %.4f)\n", sum.Mean, sum.Theoretical.Mean)
	fmt.Fprintf(out, "sample variance: %.4f (theory %.4f)\n", sum.Variance, sum.Theoretical.Variance)
	return nil
}
