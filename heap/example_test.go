package heap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/heap"
)

// ExampleHeap inserts four values into a min-heap and drains it.
func ExampleHeap() {
	h := heap.New[int](true)
	for _, v := range []int{5, 3, 8, 1} {
		h.Insert(v)
	}

	for h.Len() > 0 {
		v, _ := h.ExtractRoot()
		fmt.Print(v, " ")
	}
	fmt.Println()

	// Output:
	// 1 3 5 8
}

// ExampleHeap_Render shows the tree layout of a max-heap built in O(n).
func ExampleHeap_Render() {
	h := heap.New[int](false)
	h.BuildHeap([]int{9, 5, 2, 7, 1, 6})
	fmt.Println(h.Render())

	// Output:
	// MAX-HEAP (6 elements):
	// ========================================
	//      9
	//   7     6
	//  5  1  2
}

// ExampleSort sorts a slice descending in place.
func ExampleSort() {
	a := []int{9, 5, 2, 7, 1, 6}
	heap.Sort(a, false)
	fmt.Println(a)

	// Output:
	// [9 7 6 5 2 1]
}
