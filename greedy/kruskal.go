package greedy

import (
	"cmp"

	"github.com/katalvlaran/lvlheap/heap"
)

// KruskalMST returns a minimum spanning forest of the undirected graph with
// vertices 0..numVertices-1 and the given edges, in the order the edges were
// accepted (non-decreasing weight).
//
// Greedy choice: consider edges by increasing weight (ties keep input order)
// and accept each one joining two different components.
//
// Steps:
//  1. Sort edge indices by (Weight, input position) with heap.SortFunc.
//  2. One union-find set per vertex.
//  3. Accept an edge when Union merges two sets; self-loops and parallel
//     edges fail Union and are skipped.
//  4. Stop once numVertices-1 edges are accepted.
//
// A disconnected graph yields fewer than numVertices-1 edges, one tree per
// component. Endpoints must lie in [0, numVertices); others panic.
//
// Complexity: O(E log E + E·α(V)). Memory: O(E + V).
func KruskalMST(numVertices int, edges []Edge) []Edge {
	if numVertices <= 1 || len(edges) == 0 {
		return []Edge{}
	}

	// 1) Order by (Weight, input position) so equal weights resolve deterministically.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	heap.SortFunc(order, true, func(a, b int) int {
		if c := cmp.Compare(edges[a].Weight, edges[b].Weight); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	// 2) Disjoint sets, one per vertex.
	uf := NewUnionFind(numVertices)

	// 3) Sweep.
	mst := make([]Edge, 0, numVertices-1)
	for _, i := range order {
		e := edges[i]
		if !uf.Union(e.U, e.V) {
			continue
		}
		mst = append(mst, e)
		// 4) A spanning tree has exactly numVertices-1 edges.
		if len(mst) == numVertices-1 {
			break
		}
	}

	return mst
}
