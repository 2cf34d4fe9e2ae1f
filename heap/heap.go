package heap

import (
	"cmp"
	"fmt"
)

// New returns an empty heap over an ordered type using the natural < ordering.
// isMin selects a min-heap (true) or a max-heap (false).
func New[T cmp.Ordered](isMin bool) *Heap[T] {
	return NewFunc(isMin, cmp.Compare[T])
}

// NewFunc returns an empty heap ordered by compare, which must implement a
// strict weak ordering: negative when a sorts before b, zero when equal, positive otherwise.
// It panics with ErrNilComparator if compare is nil.
func NewFunc[T any](isMin bool, compare func(a, b T) int) *Heap[T] {
	if compare == nil {
		panic(ErrNilComparator)
	}

	return &Heap[T]{
		items:   make([]T, 0),
		isMin:   isMin,
		compare: compare,
	}
}

// precedes reports whether a must sit strictly nearer the root than b.
func (h *Heap[T]) precedes(a, b T) bool {
	c := h.compare(a, b)
	if h.isMin {
		return c < 0
	}

	return c > 0
}

// Insert adds value to the heap. Duplicates are allowed.
//
// Complexity: O(log n).
func (h *Heap[T]) Insert(value T) {
	h.items = append(h.items, value)
	h.siftUp(len(h.items) - 1)
}

// ExtractRoot removes and returns the root element.
// It returns ErrEmptyContainer if the heap is empty.
//
// Complexity: O(log n).
func (h *Heap[T]) ExtractRoot() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyContainer
	}

	// 1) Remember the root, move the last element into its slot and shrink.
	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero // release the reference held by the dropped slot
	h.items = h.items[:last]

	// 2) Repair the invariant from the top.
	if len(h.items) > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// Peek returns the root element without removing it.
// ok is false when the heap is empty.
func (h *Heap[T]) Peek() (root T, ok bool) {
	if len(h.items) == 0 {
		return root, false
	}

	return h.items[0], true
}

// BuildHeap replaces the heap contents with a copy of items and restores the
// heap property bottom-up. The caller keeps ownership of items.
//
// Complexity: O(n); most nodes sit near the leaves and sift only a few levels.
func (h *Heap[T]) BuildHeap(items []T) {
	h.items = make([]T, len(items))
	copy(h.items, items)

	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsMin reports whether h is a min-heap.
func (h *Heap[T]) IsMin() bool { return h.isMin }

// Values returns a copy of the backing array in heap (level) order.
func (h *Heap[T]) Values() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)

	return out
}

// String formats the backing array, e.g. "[1 3 5 8]".
func (h *Heap[T]) String() string {
	return fmt.Sprint(h.items)
}

// siftUp moves the element at index i towards the root while it strictly
// precedes its parent.
func (h *Heap[T]) siftUp(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if !h.precedes(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown moves the element at index i towards the leaves. Among two children
// the right one is chosen only when it strictly precedes the left one, so equal
// children resolve to the left deterministically.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	var left, right, child int
	for {
		left = 2*i + 1
		if left >= n {
			return
		}
		child = left
		right = left + 1
		if right < n && h.precedes(h.items[right], h.items[left]) {
			child = right
		}
		if !h.precedes(h.items[child], h.items[i]) {
			return
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}
