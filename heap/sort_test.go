package heap_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlheap/heap"
)

func TestSort(t *testing.T) {
	inputs := [][]int{
		{9, 5, 2, 7, 1, 6},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{42},
		{3, 3, 3, 3},
		{},
		nil,
	}
	for _, in := range inputs {
		asc := slices.Clone(in)
		heap.Sort(asc, true)
		want := slices.Clone(in)
		slices.Sort(want)
		assert.Equal(t, want, asc, "ascending %v", in)

		desc := slices.Clone(in)
		heap.Sort(desc, false)
		slices.Reverse(want)
		assert.Equal(t, want, desc, "descending %v", in)
	}
}

func TestSort_Floats(t *testing.T) {
	a := []float64{3.5, 1.2, 4.7, 2.1}
	heap.Sort(a, true)
	assert.Equal(t, []float64{1.2, 2.1, 3.5, 4.7}, a)
}

func TestSort_Random(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := make([]int, 1000)
	for i := range a {
		a[i] = r.Intn(1 << 20)
	}
	heap.Sort(a, true)
	assert.True(t, slices.IsSorted(a))
}

func TestSortFunc(t *testing.T) {
	words := []string{"pear", "Fig", "apple", "kiwi"}
	heap.SortFunc(words, true, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	assert.Equal(t, []string{"apple", "Fig", "kiwi", "pear"}, words)

	assert.PanicsWithValue(t, heap.ErrNilComparator, func() {
		heap.SortFunc(words, true, nil)
	})
}
