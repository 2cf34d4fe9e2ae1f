package pqueue

import "cmp"

// ForgetPending deletes the FIFO kept for priority, leaving the heap untouched.
// Tests use it to simulate a corrupted queue.
func ForgetPending[P cmp.Ordered, T any](q *PriorityQueue[P, T], priority P) {
	q.pending.Remove(priority)
}

// DistinctPriorities returns the number of FIFOs held in the side map.
func DistinctPriorities[P cmp.Ordered, T any](q *PriorityQueue[P, T]) int {
	return q.pending.Size()
}
