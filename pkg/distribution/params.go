package distribution

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Params holds the parameters of every supported distribution. Each kind
// reads only the fields it needs.
type Params struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Lambda float64 `json:"lambda"`
	N      int     `json:"n"`
	P      float64 `json:"p"`
	DF     int     `json:"df"`
}

// DefaultParams returns the starting values of the explorer sliders.
func DefaultParams() Params {
	return Params{
		Mean:   50,
		StdDev: 10,
		Lambda: 2,
		N:      10,
		P:      0.5,
		DF:     3,
	}
}

var paramSetters = map[string]func(p *Params, v float64) error{
	"mean":   func(p *Params, v float64) error { p.Mean = v; return nil },
	"stddev": func(p *Params, v float64) error { p.StdDev = v; return nil },
	"lambda": func(p *Params, v float64) error { p.Lambda = v; return nil },
	"p":      func(p *Params, v float64) error { p.P = v; return nil },
	"n": func(p *Params, v float64) error {
		n, err := integral("n", v)
		p.N = n
		return err
	},
	"df": func(p *Params, v float64) error {
		n, err := integral("df", v)
		p.DF = n
		return err
	},
}

// ParamsFromMap builds a Params from named values, starting from the
// defaults. Names are matched case-insensitively; "std_dev" is accepted for
// stdDev.
func ParamsFromMap(values map[string]float64) (Params, error) {
	p := DefaultParams()

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		key := strings.ReplaceAll(strings.ToLower(name), "_", "")
		set, ok := paramSetters[key]
		if !ok {
			return Params{}, fmt.Errorf("%w: unknown parameter %q", ErrInvalidArgument, name)
		}
		if err := set(&p, values[name]); err != nil {
			return Params{}, err
		}
	}
	return p, nil
}

func integral(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidArgument, name, v)
	}
	if math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s is out of range, got %v", ErrInvalidArgument, name, v)
	}
	return int(v), nil
}
