package greedy

import "github.com/cockroachdb/errors"

var (
	// ErrLengthMismatch indicates that values and weights differ in length.
	ErrLengthMismatch = errors.New("greedy: values and weights differ in length")

	// ErrNegativeWeight indicates an item with a negative weight.
	ErrNegativeWeight = errors.New("greedy: negative weight")

	// ErrInvalidCoin indicates a coin denomination that is zero or negative.
	ErrInvalidCoin = errors.New("greedy: coin denomination must be positive")
)

// Interval is a half-open time span [Start, End).
// Two intervals are compatible when one ends no later than the other starts.
type Interval struct {
	Start int
	End   int
}

// Take records how much of an item FractionalKnapsack put in the knapsack.
type Take struct {
	Index    int     // position in the input slices
	Fraction float64 // in (0, 1]
}

// Edge is an undirected weighted edge between vertices U and V, numbered
// from 0.
type Edge struct {
	U, V   int
	Weight float64
}
