// Package pqueue implements a FIFO-stable priority queue on top of heap.Heap.
//
// Items carry a separately supplied priority. The queue serves the best
// priority first (smallest for a min-queue, largest for a max-queue) and, among
// items that share a priority, the one enqueued first.
//
// Layout:
//
//	heap     one priority value per pending item (multiset)
//	pending  priority → FIFO of items (ordered map, gods treemap)
//
// Every priority in the heap has a non-empty FIFO in pending, and each FIFO
// holds exactly as many items as the heap holds copies of its priority.
//
// Empty queue:
//
// Dequeue and Peek report an empty queue with ok == false. Polling until
// empty is the intended way to consume a queue, so running dry is not an error.
//
// Broken invariant:
//
// A priority surfacing from the heap without a pending item can only be caused
// by a bug inside this package. By default the queue logs an
// assertion-failure error through the configured zap logger and reports an
// empty result without re-inserting the priority. WithStrict() turns the same
// condition into a panic whose value satisfies errors.IsAssertionFailure.
//
// Complexity:
//
//   - Enqueue, Dequeue: O(log n) heap work + O(log k) side-map lookup
//     (k = number of distinct priorities)
//   - Peek, Len, IsEmpty: O(1) heap + O(log k) lookup
package pqueue
