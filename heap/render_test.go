package heap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlheap/heap"
)

func TestRender(t *testing.T) {
	h := heap.New[int](true)
	assert.Equal(t, "(empty heap)", h.Render())

	for _, v := range []int{5, 3, 8, 1} {
		h.Insert(v)
	}
	want := "MIN-HEAP (4 elements):\n" +
		"========================================\n" +
		"     1\n" +
		"  3     8\n" +
		" 5"
	assert.Equal(t, want, h.Render())
}

func TestRender_MaxHeapWideLabels(t *testing.T) {
	h := heap.New[int](false)
	h.BuildHeap([]int{7, 10, 3})

	// width 2 → bottom slots of 4 characters, two levels.
	want := "MAX-HEAP (3 elements):\n" +
		"========================================\n" +
		"   10\n" +
		" 7   3"
	assert.Equal(t, want, h.Render())
}

func TestRender_MultibyteLabels(t *testing.T) {
	h := heap.New[string](true)
	h.BuildHeap([]string{"яя", "б", "в"})

	// Labels are measured in runes: "яя" is 2 wide although it takes 4 bytes.
	want := "MIN-HEAP (3 elements):\n" +
		"========================================\n" +
		"   б\n" +
		" яя  в"
	assert.Equal(t, want, h.Render())
}
