package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/simulate"
)

func main() {
	flips := flag.Int("flips", 100, "number of coin flips")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	if err := run(*flips, *seed, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(flips int, seed uint64, out io.Writer) error {
	if flips < 0 {
		return fmt.Errorf("flips must not be negative, got %d", flips)
	}

	coin := simulate.NewCoinFlipper(seed)
	coin.FlipN(flips)

	fmt.Fprintf(out, "Total flips: %d\n", coin.Total())
	for _, face := range []simulate.Face{simulate.Heads, simulate.Tails} {
		fmt.Fprintf(out, "%s: %d (%.1f%%)\n", face, coin.Count(face), coin.Probability(face))
	}
	return nil
}
