package greedy

import (
	"cmp"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlheap/heap"
	"github.com/katalvlaran/lvlheap/pqueue"
)

// IntervalScheduling returns a maximum-size set of pairwise compatible
// intervals, in the order they were chosen.
//
// Greedy choice: consider intervals by increasing end time (ties keep input
// order) and keep each one that starts no earlier than the last kept end.
//
// Complexity: O(n log n).
func IntervalScheduling(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}

	// 1) Order by (End, input position) so equal ends resolve deterministically.
	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	heap.SortFunc(order, true, func(a, b int) int {
		if c := cmp.Compare(intervals[a].End, intervals[b].End); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	// 2) Sweep.
	chosen := make([]Interval, 0, len(intervals))
	lastEnd := math.MinInt
	for _, i := range order {
		if intervals[i].Start >= lastEnd {
			chosen = append(chosen, intervals[i])
			lastEnd = intervals[i].End
		}
	}

	return chosen
}

// FractionalKnapsack fills a knapsack of the given capacity, allowing items to
// be split, and returns the total value collected with the portions taken.
//
// Greedy choice: items by decreasing value per unit of weight (ties keep input
// order), each taken whole while it fits and the last one fractionally.
// Zero-weight items are skipped.
//
// Errors: ErrLengthMismatch, ErrNegativeWeight.
//
// Complexity: O(n log n).
func FractionalKnapsack(values, weights []float64, capacity float64) (float64, []Take, error) {
	if len(values) != len(weights) {
		return 0, nil, errors.Wrapf(ErrLengthMismatch, "%d values, %d weights", len(values), len(weights))
	}

	// 1) Max-queue on value density; equal densities come out in index order.
	q := pqueue.New[float64, int](false)
	for i, w := range weights {
		if w < 0 {
			return 0, nil, errors.Wrapf(ErrNegativeWeight, "item %d weight=%g", i, w)
		}
		if w == 0 {
			continue
		}
		q.Enqueue(i, values[i]/w)
	}

	// 2) Take the densest items until the knapsack is full.
	var total float64
	taken := make([]Take, 0, q.Len())
	for capacity > 0 {
		_, i, ok := q.Dequeue()
		if !ok {
			break
		}
		frac := math.Min(1, capacity/weights[i])
		total += values[i] * frac
		capacity -= weights[i] * frac
		taken = append(taken, Take{Index: i, Fraction: frac})
	}

	return total, taken, nil
}

// CoinChange makes change for amount using the largest denominations first and
// returns how many of each coin were used, aligned with coins. A denomination
// listed twice is counted at its first position only. Any remainder that the
// denominations cannot express is left unpaid; the greedy result is optimal
// for canonical coin systems such as {25, 10, 5, 1} but not in general.
//
// Errors: ErrInvalidCoin.
//
// Complexity: O(n log n).
func CoinChange(amount int, coins []int) ([]int, error) {
	for i, c := range coins {
		if c <= 0 {
			return nil, errors.Wrapf(ErrInvalidCoin, "coin %d is %d", i, c)
		}
	}

	desc := make([]int, len(coins))
	copy(desc, coins)
	heap.Sort(desc, false)

	used := make(map[int]int, len(desc))
	remaining := amount
	for _, c := range desc {
		if remaining <= 0 {
			break
		}
		if _, done := used[c]; done {
			continue
		}
		used[c] = remaining / c
		remaining -= used[c] * c
	}

	counts := make([]int, len(coins))
	for i, c := range coins {
		counts[i] = used[c]
		delete(used, c) // later duplicates report zero
	}

	return counts, nil
}
