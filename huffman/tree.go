package huffman

import (
	"maps"
	"math/bits"
	"strings"

	"github.com/cockroachdb/errors"
)

// Tree is a finished Huffman tree together with its code table.
// The zero value is an empty tree.
type Tree[S comparable] struct {
	root  *Node[S]
	codes map[S]string
}

// Root returns the root node for callers that need to walk the tree, e.g. a
// custom decoder. It is nil for an empty tree. The tree must not be modified.
func (t *Tree[S]) Root() *Node[S] { return t.root }

// Len returns the number of symbols (leaves) in the tree.
func (t *Tree[S]) Len() int { return len(t.codes) }

// Codes returns a copy of the code table.
func (t *Tree[S]) Codes() map[S]string {
	out := make(map[S]string, len(t.codes))
	maps.Copy(out, t.codes)

	return out
}

// Code returns the code of s and whether s is in the tree.
func (t *Tree[S]) Code(s S) (string, bool) {
	code, ok := t.codes[s]

	return code, ok
}

// Encode concatenates the codes of symbols.
//
// Errors: ErrEmptyTree if the tree is empty and symbols is not;
// ErrUnknownSymbol for a symbol outside the tree.
func (t *Tree[S]) Encode(symbols []S) (string, error) {
	if len(symbols) == 0 {
		return "", nil
	}
	if t.root == nil {
		return "", ErrEmptyTree
	}

	var b strings.Builder
	for i, s := range symbols {
		code, ok := t.codes[s]
		if !ok {
			return "", errors.Wrapf(ErrUnknownSymbol, "symbol %v at position %d", s, i)
		}
		b.WriteString(code)
	}

	return b.String(), nil
}

// Decode turns a bit string produced by Encode back into symbols by walking the
// tree from the root, left on '0' and right on '1', restarting at every leaf.
// A single-symbol tree decodes each '0' as that symbol.
//
// Errors: ErrEmptyTree, ErrInvalidBit, ErrIncompleteCode.
func (t *Tree[S]) Decode(bits string) ([]S, error) {
	if bits == "" {
		return []S{}, nil
	}
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	out := make([]S, 0, len(bits)/2+1)

	// 1) Lone leaf: the only valid code is "0".
	if t.root.IsLeaf() {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return nil, errors.Wrapf(ErrInvalidBit, "%q at position %d", bits[i], i)
			}
			out = append(out, t.root.Symbol)
		}

		return out, nil
	}

	// 2) General case: descend one edge per bit.
	n := t.root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			n = n.Left
		case '1':
			n = n.Right
		default:
			return nil, errors.Wrapf(ErrInvalidBit, "%q at position %d", bits[i], i)
		}
		if n.IsLeaf() {
			out = append(out, n.Symbol)
			n = t.root
		}
	}
	if n != t.root {
		return nil, errors.Wrapf(ErrIncompleteCode, "after %d bits", len(bits))
	}

	return out, nil
}

// Frequencies counts how often each symbol occurs in symbols.
func Frequencies[S comparable](symbols []S) map[S]uint64 {
	freqs := make(map[S]uint64)
	for _, s := range symbols {
		freqs[s]++
	}

	return freqs
}

// WeightedLength returns Σ freq(s)·len(code(s)) over the symbols present in
// both maps: the length in bits of the message the table describes.
// Huffman codes minimise this value among all binary prefix codes.
//
// Errors: ErrLengthOverflow when the sum does not fit in uint64.
func WeightedLength[S comparable](freqs map[S]uint64, codes map[S]string) (uint64, error) {
	var total uint64
	for s, f := range freqs {
		code, ok := codes[s]
		if !ok {
			continue
		}
		hi, lo := bits.Mul64(f, uint64(len(code)))
		if hi != 0 {
			return 0, errors.Wrapf(ErrLengthOverflow, "%d × %d bits", f, len(code))
		}
		var carry uint64
		total, carry = bits.Add64(total, lo, 0)
		if carry != 0 {
			return 0, errors.Wrapf(ErrLengthOverflow, "adding %d bits", lo)
		}
	}

	return total, nil
}
