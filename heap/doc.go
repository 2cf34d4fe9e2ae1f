// Package heap provides an array-backed binary heap with a configurable
// direction (min or max) and an in-place heapsort built on top of it.
//
// What:
//
//   - Heap[T]: a complete binary tree stored level by level in a slice.
//     The children of index i live at 2i+1 and 2i+2, the parent at (i-1)/2.
//   - Heap property: no child ever strictly precedes its parent under the
//     configured ordering (≤ for a min-heap, ≥ for a max-heap).
//   - Sort / SortFunc: heapsort in place, ascending or descending.
//   - Render: a level-by-level text picture of the tree, handy in tests and demos.
//
// Why:
//
//   - A heap is the cheapest structure that always knows its best element:
//     priority queues, schedulers, top-k selection, k-way merges and greedy
//     algorithms (Huffman, Prim, Dijkstra) all reduce to "insert" and "take the best".
//
// Ordering:
//
//	New[T cmp.Ordered](isMin)        uses cmp.Compare
//	NewFunc[T any](isMin, compare)   uses a caller supplied total order
//
// The direction is fixed for the lifetime of the heap. Equal elements are
// permitted; when both children of a node compare equal, sift-down prefers the
// left child, so a given sequence of operations always yields the same layout.
//
// Complexity:
//
//   - Insert, ExtractRoot: O(log n)
//   - Peek, Len:           O(1)
//   - BuildHeap:           O(n) (bottom-up sift-down from len/2-1)
//   - Sort:                O(n log n), O(n) extra space
//
// Errors:
//
//   - ErrEmptyContainer  ExtractRoot on an empty heap
//   - ErrNilComparator   panic value for a nil comparison function
//
// A Heap owns its backing slice exclusively and performs no locking; callers
// sharing one across goroutines must guard it themselves.
package heap
