package heap

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyContainer is returned by ExtractRoot when the heap holds no elements.
	// Calling ExtractRoot on an empty heap is a contract violation by the caller;
	// check Len (or use Peek) first.
	ErrEmptyContainer = errors.New("heap: extract from empty container")

	// ErrNilComparator is the panic value raised by NewFunc and SortFunc
	// when no comparison function is supplied.
	ErrNilComparator = errors.New("heap: comparator is nil")
)

// Heap is an array-backed binary heap over T.
//
// The ordering direction (min or max) and the comparison function are fixed at
// construction. A min-heap keeps the smallest element (compare(a, b) < 0) at the
// root; a max-heap keeps the largest one (compare(a, b) > 0).
//
// The zero value is not usable; construct with New or NewFunc.
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	items   []T              // backing array in heap order; len(items) is the size
	isMin   bool             // true for min-heap, false for max-heap
	compare func(a, b T) int // <0 if a sorts before b, 0 if equal, >0 otherwise
}
