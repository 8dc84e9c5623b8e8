package distribution

import "gonum.org/v1/gonum/floats"

// Point is one plotted value: Y is the scaled density or mass at X.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sequence is an ordered run of points with ascending X.
type Sequence []Point

// Len and XY let a Sequence be handed to gonum/plot as an XYer.
func (s Sequence) Len() int { return len(s) }

func (s Sequence) XY(i int) (x, y float64) { return s[i].X, s[i].Y }

// Xs returns the x coordinates.
func (s Sequence) Xs() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y coordinates.
func (s Sequence) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = p.Y
	}
	return ys
}

// Total returns the sum of all y values.
func (s Sequence) Total() float64 {
	return floats.Sum(s.Ys())
}

// Peak returns the point with the largest y. The first one wins on ties.
// It reports false for an empty sequence.
func (s Sequence) Peak() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[floats.MaxIdx(s.Ys())], true
}
