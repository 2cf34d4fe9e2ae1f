package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/pqueue"
)

// ExamplePriorityQueue serves tasks by urgency; tasks of equal urgency keep
// their arrival order.
func ExamplePriorityQueue() {
	q := pqueue.New[int, string](true)
	q.Enqueue("write report", 2)
	q.Enqueue("fix outage", 1)
	q.Enqueue("reply to email", 2)
	q.Enqueue("page on-call", 1)

	for {
		p, task, ok := q.Dequeue()
		if !ok {
			break
		}
		fmt.Printf("%d %s\n", p, task)
	}

	// Output:
	// 1 fix outage
	// 1 page on-call
	// 2 write report
	// 2 reply to email
}
