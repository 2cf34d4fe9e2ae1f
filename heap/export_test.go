package heap

// Violation returns the index of the first child that strictly precedes its
// parent, or -1 if the heap property holds everywhere.
func Violation[T any](h *Heap[T]) int {
	for c := 1; c < len(h.items); c++ {
		if h.precedes(h.items[c], h.items[(c-1)/2]) {
			return c
		}
	}

	return -1
}
