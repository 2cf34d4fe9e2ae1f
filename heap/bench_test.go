package heap_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlheap/heap"
)

// randomInts returns n pseudo-random ints from a fixed seed so runs are comparable.
func randomInts(n int) []int {
	r := rand.New(rand.NewSource(42))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Int()
	}

	return out
}

// BenchmarkInsertExtract_10000 measures n inserts followed by n extractions.
func BenchmarkInsertExtract_10000(b *testing.B) {
	data := randomInts(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := heap.New[int](true)
		for _, v := range data {
			h.Insert(v)
		}
		for h.Len() > 0 {
			_, _ = h.ExtractRoot()
		}
	}
}

// BenchmarkBuildHeap_10000 measures the linear-time bottom-up construction.
func BenchmarkBuildHeap_10000(b *testing.B) {
	data := randomInts(10000)
	h := heap.New[int](true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.BuildHeap(data)
	}
}

// BenchmarkSort_10000 compares heapsort on a fresh copy each iteration.
func BenchmarkSort_10000(b *testing.B) {
	data := randomInts(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a := slices.Clone(data)
		b.StartTimer()
		heap.Sort(a, true)
	}
}
