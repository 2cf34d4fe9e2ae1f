package heap

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const renderRule = 40 // width of the "=====" separator under the title

// Render draws the heap as a tree, one line per level, each element centered
// in its slot so that children sit under their parent:
//
//	MIN-HEAP (4 elements):
//	========================================
//	     1
//	  3     8
//	 5
//
// An empty heap renders as "(empty heap)". Trailing spaces are trimmed.
func (h *Heap[T]) Render() string {
	n := len(h.items)
	if n == 0 {
		return "(empty heap)"
	}

	// 1) Stringify once and find the widest label, measured in runes.
	labels := make([]string, n)
	runes := make([]int, n)
	width := 0
	for i, v := range h.items {
		labels[i] = fmt.Sprint(v)
		runes[i] = utf8.RuneCountInString(labels[i])
		width = max(width, runes[i])
	}

	// 2) Depth of a complete tree holding n nodes.
	depth := 0
	for (1<<depth)-1 < n {
		depth++
	}

	kind := "MAX"
	if h.isMin {
		kind = "MIN"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s-HEAP (%d elements):\n", kind, n)
	b.WriteString(strings.Repeat("=", renderRule))

	// 3) The bottom level gets width+2 characters per slot; each level above
	//    halves the number of slots and doubles their width.
	total := (1 << (depth - 1)) * (width + 2)
	var line strings.Builder
	for level := 0; level < depth; level++ {
		start := (1 << level) - 1
		end := min((1<<(level+1))-1, n)
		cell := total / (1 << level)

		line.Reset()
		for i := start; i < end; i++ {
			pad := cell - runes[i]
			left := pad / 2
			line.WriteString(strings.Repeat(" ", left))
			line.WriteString(labels[i])
			line.WriteString(strings.Repeat(" ", pad-left))
		}
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(line.String(), " "))
	}

	return b.String()
}
