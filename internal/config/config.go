package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/distribution"
)

type Config struct {
	Distribution string
	Mean, StdDev float64
	Lambda, P    float64
	N, DF        int
	Scale        float64
	Bound        float64
	CSVOutput    string
	ChartOutput  string
	LogLevel     string
	ParamList    string

	Kind distribution.Kind
}

// Parse reads the command line into a Config. Defaults match the starting
// position of the explorer sliders.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	defaults := distribution.DefaultParams()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	// define flags
	fs.StringVar(&cfg.Distribution, "dist", "normal", "distribution: normal, poisson, binomial, exponential, chi-squared")
	fs.Float64Var(&cfg.Mean, "mean", defaults.Mean, "mean of the normal distribution")
	fs.Float64Var(&cfg.StdDev, "std-dev", defaults.StdDev, "standard deviation of the normal distribution")
	fs.Float64Var(&cfg.Lambda, "lambda", defaults.Lambda, "rate of the poisson and exponential distributions")
	fs.IntVar(&cfg.N, "n", defaults.N, "number of binomial trials")
	fs.Float64Var(&cfg.P, "p", defaults.P, "binomial success probability")
	fs.IntVar(&cfg.DF, "df", defaults.DF, "chi-squared degrees of freedom")
	fs.Float64Var(&cfg.Scale, "scale", 100, "display multiplier applied to every density or mass")
	fs.Float64Var(&cfg.Bound, "bound", math.NaN(), "upper end of the walk (max k or max x); the distribution's default when unset")
	fs.StringVar(&cfg.CSVOutput, "csv", "", "write the points to this CSV file")
	fs.StringVar(&cfg.ChartOutput, "chart", "", "render the points to this image (png, pdf, svg)")
	fs.StringVar(&cfg.ParamList, "params", "", "comma separated name=value pairs, e.g. mean=40,stdDev=5; unnamed parameters keep their defaults")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if cfg.ParamList != "" {
		if err := cfg.applyParamList(); err != nil {
			return nil, err
		}
	}

	kind, err := distribution.ParseKind(cfg.Distribution)
	if err != nil {
		return nil, err
	}
	cfg.Kind = kind
	if math.IsNaN(cfg.Bound) {
		cfg.Bound = distribution.DefaultBound(kind)
	}

	return cfg, nil
}

func (c *Config) applyParamList() error {
	values := make(map[string]float64)
	for _, pair := range strings.Split(c.ParamList, ",") {
		name, raw, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return fmt.Errorf("%w: parameter %q is not name=value", distribution.ErrInvalidArgument, pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("%w: parameter %s: %v", distribution.ErrInvalidArgument, name, err)
		}
		values[strings.TrimSpace(name)] = v
	}

	p, err := distribution.ParamsFromMap(values)
	if err != nil {
		return err
	}
	c.Mean, c.StdDev, c.Lambda, c.N, c.P, c.DF = p.Mean, p.StdDev, p.Lambda, p.N, p.P, p.DF
	return nil
}

// Params returns the distribution parameters carried by the config.
func (c *Config) Params() distribution.Params {
	return distribution.Params{
		Mean:   c.Mean,
		StdDev: c.StdDev,
		Lambda: c.Lambda,
		N:      c.N,
		P:      c.P,
		DF:     c.DF,
	}
}

func (c *Config) ToString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "distribution: %v\n", c.Kind)
	switch c.Kind {
	case distribution.Normal:
		fmt.Fprintf(&b, "mean: %g, std-dev: %g\n", c.Mean, c.StdDev)
	case distribution.Poisson, distribution.Exponential:
		fmt.Fprintf(&b, "lambda: %g\n", c.Lambda)
	case distribution.Binomial:
		fmt.Fprintf(&b, "n: %d, p: %g\n", c.N, c.P)
	case distribution.ChiSquared:
		fmt.Fprintf(&b, "df: %d\n", c.DF)
	}
	fmt.Fprintf(&b, "scale: %g", c.Scale)
	if distribution.UsesBound(c.Kind) {
		fmt.Fprintf(&b, ", bound: %g", c.Bound)
	}
	return b.String()
}
