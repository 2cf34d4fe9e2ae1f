package pqueue

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlheap/heap"
)

// PriorityQueue orders items by a separately supplied priority and serves
// items of equal priority in first-in-first-out order.
//
// Internally a binary heap holds one copy of the priority per enqueued item,
// and an ordered side map keeps, for every priority present in the heap, the
// FIFO of items still waiting at that priority.
//
// A PriorityQueue is not safe for concurrent use.
type PriorityQueue[P cmp.Ordered, T any] struct {
	heap    *heap.Heap[P] // one occurrence per pending item
	pending *treemap.Map  // P → *linkedlistqueue.Queue of T, never empty
	opts    Options
}

// New returns an empty priority queue. isMin selects whether the smallest
// (true) or the largest (false) priority is served first.
func New[P cmp.Ordered, T any](isMin bool, opts ...Option) *PriorityQueue[P, T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PriorityQueue[P, T]{
		heap: heap.New[P](isMin),
		pending: treemap.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(P), b.(P))
		}),
		opts: cfg,
	}
}

// Enqueue adds item with the given priority.
//
// Complexity: O(log n).
func (q *PriorityQueue[P, T]) Enqueue(item T, priority P) {
	q.heap.Insert(priority)

	var fifo *linkedlistqueue.Queue
	if v, found := q.pending.Get(priority); found {
		fifo = v.(*linkedlistqueue.Queue)
	} else {
		fifo = linkedlistqueue.New()
		q.pending.Put(priority, fifo)
	}
	fifo.Enqueue(item)
}

// Dequeue removes and returns the item with the best priority; among equal
// priorities the earliest enqueued item wins. ok is false when the queue is
// empty, which is the normal end of a polling loop rather than an error.
//
// Complexity: O(log n).
func (q *PriorityQueue[P, T]) Dequeue() (priority P, item T, ok bool) {
	// 1) An empty heap means the queue is exhausted.
	priority, err := q.heap.ExtractRoot()
	if err != nil {
		return priority, item, false
	}

	// 2) Take the oldest item waiting at that priority.
	v, found := q.pending.Get(priority)
	if !found {
		q.violation(priority)

		return priority, item, false
	}
	fifo := v.(*linkedlistqueue.Queue)
	raw, found := fifo.Dequeue()
	if !found {
		q.violation(priority)

		return priority, item, false
	}

	// 3) Drop the FIFO once drained so the side map mirrors the heap.
	if fifo.Empty() {
		q.pending.Remove(priority)
	}
	item, _ = raw.(T) // a nil interface item stays the zero T

	return priority, item, true
}

// Peek returns the item Dequeue would return next without removing it.
// ok is false when the queue is empty.
func (q *PriorityQueue[P, T]) Peek() (priority P, item T, ok bool) {
	priority, ok = q.heap.Peek()
	if !ok {
		return priority, item, false
	}

	v, found := q.pending.Get(priority)
	if !found {
		q.violation(priority)

		return priority, item, false
	}
	raw, found := v.(*linkedlistqueue.Queue).Peek()
	if !found {
		q.violation(priority)

		return priority, item, false
	}
	item, _ = raw.(T)

	return priority, item, true
}

// Drain dequeues every item and returns them in service order.
func (q *PriorityQueue[P, T]) Drain() []Entry[P, T] {
	out := make([]Entry[P, T], 0, q.Len())
	for {
		p, it, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, Entry[P, T]{Priority: p, Item: it})
	}
}

// Len returns the number of pending items.
func (q *PriorityQueue[P, T]) Len() int { return q.heap.Len() }

// IsEmpty reports whether no items are pending.
func (q *PriorityQueue[P, T]) IsEmpty() bool { return q.heap.Len() == 0 }

// IsMin reports whether the smallest priority is served first.
func (q *PriorityQueue[P, T]) IsMin() bool { return q.heap.IsMin() }

// String summarizes the queue, e.g. "PriorityQueue(size=3, is_min=true)".
func (q *PriorityQueue[P, T]) String() string {
	return fmt.Sprintf("PriorityQueue(size=%d, is_min=%t)", q.Len(), q.IsMin())
}

// violation handles a priority found in the heap with no item behind it.
// This is a bug in the queue itself, never a caller error. In strict mode it
// panics; otherwise it is logged and the caller sees an empty result. The
// priority is not put back into the heap.
func (q *PriorityQueue[P, T]) violation(priority P) {
	err := errors.AssertionFailedf("pqueue: priority %v has no pending item", priority)
	if q.opts.Strict {
		panic(err)
	}
	q.opts.Logger.Error("priority queue invariant violated",
		zap.Error(err),
		zap.Int("heap_len", q.heap.Len()),
		zap.Int("distinct_priorities", q.pending.Size()),
	)
}
