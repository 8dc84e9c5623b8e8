package distribution

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported distributions.
type Kind int

const (
	Normal Kind = iota
	Poisson
	Binomial
	Exponential
	ChiSquared
)

var kindNames = [...]string{
	Normal:      "normal",
	Poisson:     "poisson",
	Binomial:    "binomial",
	Exponential: "exponential",
	ChiSquared:  "chi-squared",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Discrete reports whether the kind has integer support and a mass function.
func (k Kind) Discrete() bool {
	return k == Poisson || k == Binomial
}

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{Normal, Poisson, Binomial, Exponential, ChiSquared}
}

// ParseKind maps a name such as "chi-squared" to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}
	if n == "chisquared" || n == "chi2" {
		return ChiSquared, nil
	}
	return 0, fmt.Errorf("%w: unknown distribution %q", ErrInvalidArgument, name)
}
