package greedy

// UnionFind is a disjoint-set forest over the elements 0..n-1 with path
// compression and union by rank. Find and Union run in amortised O(α(n)).
//
// Elements outside [0, n) make Find and Union panic with an index error.
type UnionFind struct {
	parent []int
	rank   []int
	sets   int
}

// NewUnionFind returns n singleton sets.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Find returns the representative of the set holding x. Every element on the
// walk is re-pointed straight at the root.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y and reports whether they were distinct.
// The lower-rank root is attached under the higher one; on equal ranks x's
// root wins and its rank grows.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	if uf.rank[rx] < uf.rank[ry] {
		uf.parent[rx] = ry
	} else {
		uf.parent[ry] = rx
		if uf.rank[rx] == uf.rank[ry] {
			uf.rank[rx]++
		}
	}
	uf.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool { return uf.Find(x) == uf.Find(y) }

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }
