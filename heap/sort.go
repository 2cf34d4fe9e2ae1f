package heap

import "cmp"

// Sort sorts a in place with heapsort, ascending or descending.
//
// For ascending order a max-heap is built and its roots are written from the
// back of a towards the front; descending order uses a min-heap the same way.
//
// Complexity: O(n log n) time, O(n) extra space for the heap copy.
func Sort[T cmp.Ordered](a []T, ascending bool) {
	SortFunc(a, ascending, cmp.Compare[T])
}

// SortFunc is Sort with an explicit comparison function.
// It panics with ErrNilComparator if compare is nil.
func SortFunc[T any](a []T, ascending bool, compare func(a, b T) int) {
	h := NewFunc(!ascending, compare)
	h.BuildHeap(a)

	for i := len(a) - 1; i >= 0; i-- {
		// The heap holds exactly i+1 elements here, so ExtractRoot cannot fail.
		a[i], _ = h.ExtractRoot()
	}
}
