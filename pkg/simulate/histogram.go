package simulate

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Histogram counts values falling into consecutive [Bins[i], Bins[i+1]) ranges.
type Histogram struct {
	Bins   []float64
	Counts []int
}

// NewHistogram creates an empty histogram over the given bin edges.
func NewHistogram(bins []float64) (*Histogram, error) {
	if len(bins) < 2 {
		return nil, fmt.Errorf("histogram needs at least two bin edges, got %d", len(bins))
	}
	if !sort.Float64sAreSorted(bins) {
		return nil, fmt.Errorf("histogram bin edges must be ascending")
	}
	return &Histogram{
		Bins:   bins,
		Counts: make([]int, len(bins)-1),
	}, nil
}

// UniformBins returns n+1 evenly spaced edges from low to high.
func UniformBins(low, high float64, n int) []float64 {
	return floats.Span(make([]float64, n+1), low, high)
}

// CalculateHistogram counts data into the bins. The last bin also takes
// values equal to the upper edge; values outside the range are ignored.
func (h *Histogram) CalculateHistogram(data []float64) *Histogram {
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	last := len(h.Counts) - 1
	bin := 0
	for _, v := range sorted {
		for bin < last && v >= h.Bins[bin+1] {
			bin++
		}
		switch {
		case v >= h.Bins[bin] && v < h.Bins[bin+1]:
			h.Counts[bin]++
		case bin == last && v == h.Bins[bin+1]:
			h.Counts[bin]++
		}
	}
	return h
}

// Total returns the number of counted values.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Print writes one bar per bin, scaled so the fullest bin is width runes wide.
func (h *Histogram) Print(w io.Writer, width int) error {
	maxCount := 0
	for _, c := range h.Counts {
		maxCount = max(maxCount, c)
	}
	for i, c := range h.Counts {
		bar := 0
		if maxCount > 0 {
			bar = int(math.Round(float64(c) / float64(maxCount) * float64(width)))
		}
		if _, err := fmt.Fprintf(w, "[%8.2f - %8.2f): %s %d\n", h.Bins[i], h.Bins[i+1], strings.Repeat("█", bar), c); err != nil {
			return err
		}
	}
	return nil
}
