package huffman

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlheap/pqueue"
)

// Build constructs the Huffman tree for freqs.
//
// Go maps iterate in random order, so symbols are seeded in ascending symbol
// order; the same table therefore always yields the same tree. Use
// BuildOrdered to control the seeding order explicitly.
//
// An empty table yields an empty tree. Zero frequencies are legal.
// The only failure is ErrFrequencyOverflow.
func Build[S cmp.Ordered](freqs map[S]uint64, opts ...Option) (*Tree[S], error) {
	symbols := make([]S, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	seeds := make([]SymbolFreq[S], len(symbols))
	for i, s := range symbols {
		seeds[i] = SymbolFreq[S]{Symbol: s, Freq: freqs[s]}
	}

	return BuildOrdered(seeds, opts...)
}

// BuildOrdered constructs the Huffman tree for freqs, using the slice order as
// the insertion order that breaks frequency ties.
//
// Steps:
//  1. Seed a min priority queue keyed by frequency with one leaf per symbol,
//     numbered 0, 1, 2, … in slice order.
//  2. While more than one node remains, pop the two lowest (frequency, sequence)
//     nodes and push their parent (left = first popped, right = second popped)
//     under the next sequence number.
//  3. The last node is the root; codes are assigned by a depth-first walk.
//
// The queue serves equal priorities first-in-first-out, and sequence numbers
// grow with every push, so FIFO order is exactly ascending sequence order.
//
// Errors: ErrDuplicateSymbol, ErrFrequencyOverflow.
//
// Complexity: O(n log n) time, O(n) memory.
func BuildOrdered[S comparable](freqs []SymbolFreq[S], opts ...Option) (*Tree[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	t := &Tree[S]{codes: make(map[S]string, len(freqs))}
	if len(freqs) == 0 {
		log.Debug("huffman tree is empty")

		return t, nil
	}

	// 1) Seed the queue with leaves.
	q := pqueue.New[uint64, *Node[S]](true, pqueue.WithLogger(log))
	seen := make(map[S]struct{}, len(freqs))
	var seq uint64
	for _, sf := range freqs {
		if _, dup := seen[sf.Symbol]; dup {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "symbol %v", sf.Symbol)
		}
		seen[sf.Symbol] = struct{}{}
		q.Enqueue(&Node[S]{Symbol: sf.Symbol, Freq: sf.Freq, Seq: seq}, sf.Freq)
		seq++
	}

	// 2) Merge the two lightest nodes until one remains: exactly n-1 merges.
	var left, right, parent *Node[S]
	for q.Len() > 1 {
		_, left, _ = q.Dequeue()
		_, right, _ = q.Dequeue()
		if left.Freq > ^uint64(0)-right.Freq {
			return nil, errors.Wrapf(ErrFrequencyOverflow, "%d + %d", left.Freq, right.Freq)
		}
		parent = &Node[S]{Freq: left.Freq + right.Freq, Seq: seq, Left: left, Right: right}
		log.Debug("huffman merge",
			zap.Uint64("left_seq", left.Seq),
			zap.Uint64("right_seq", right.Seq),
			zap.Uint64("freq", parent.Freq),
			zap.Uint64("seq", parent.Seq),
		)
		q.Enqueue(parent, parent.Freq)
		seq++
	}

	// 3) The survivor is the root.
	_, t.root, _ = q.Dequeue()
	t.assign(t.root, make([]byte, 0, len(freqs)))

	log.Debug("huffman tree built",
		zap.Int("symbols", len(t.codes)),
		zap.Uint64("total_freq", t.root.Freq),
	)

	return t, nil
}

// BuildCodes returns the Huffman code of every symbol in freqs as a string of
// '0' and '1' characters. An empty table yields an empty map; a single symbol
// receives "0".
func BuildCodes[S cmp.Ordered](freqs map[S]uint64, opts ...Option) (map[S]string, error) {
	t, err := Build(freqs, opts...)
	if err != nil {
		return nil, err
	}

	return t.Codes(), nil
}

// assign walks the subtree rooted at n, extending prefix with '0' on the way
// left and '1' on the way right, and records each leaf's code. A root that is
// itself a leaf gets "0" since an empty code cannot be decoded.
func (t *Tree[S]) assign(n *Node[S], prefix []byte) {
	if n.IsLeaf() {
		code := string(prefix)
		if code == "" {
			code = "0"
		}
		t.codes[n.Symbol] = code

		return
	}
	t.assign(n.Left, append(prefix, '0'))
	t.assign(n.Right, append(prefix, '1'))
}
