package simulate

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Face is one side of a coin.
type Face string

const (
	Heads Face = "Heads"
	Tails Face = "Tails"
)

// CoinFlipper keeps a running tally of fair coin flips. It is not safe for
// concurrent use; the caller's timer owns it.
type CoinFlipper struct {
	coin   distuv.Bernoulli
	counts map[Face]int
	total  int
}

// NewCoinFlipper returns a flipper with an empty tally.
func NewCoinFlipper(seed uint64) *CoinFlipper {
	return &CoinFlipper{
		coin:   distuv.Bernoulli{P: 0.5, Src: rand.NewPCG(seed, ^seed)},
		counts: make(map[Face]int, 2),
	}
}

// Flip tosses the coin once and records the result.
func (c *CoinFlipper) Flip() Face {
	face := Tails
	if c.coin.Rand() == 1 {
		face = Heads
	}
	c.counts[face]++
	c.total++
	return face
}

// FlipN tosses the coin n times.
func (c *CoinFlipper) FlipN(n int) {
	for range n {
		c.Flip()
	}
}

// Count returns how often face came up.
func (c *CoinFlipper) Count(face Face) int { return c.counts[face] }

// Total returns the number of flips so far.
func (c *CoinFlipper) Total() int { return c.total }

// Probability returns the observed share of face in percent, or 0 before the
// first flip.
func (c *CoinFlipper) Probability(face Face) float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.counts[face]) / float64(c.total) * 100
}

// Reset clears the tally.
func (c *CoinFlipper) Reset() {
	clear(c.counts)
	c.total = 0
}
