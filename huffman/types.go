package huffman

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	// ErrEmptyTree is returned when encoding or decoding non-empty input with a
	// tree built from an empty frequency table.
	ErrEmptyTree = errors.New("huffman: tree is empty")

	// ErrDuplicateSymbol indicates that an ordered frequency list names the same
	// symbol twice.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")

	// ErrFrequencyOverflow indicates that the total frequency does not fit in uint64.
	ErrFrequencyOverflow = errors.New("huffman: total frequency overflows uint64")

	// ErrLengthOverflow indicates that a weighted code length does not fit in uint64.
	ErrLengthOverflow = errors.New("huffman: weighted length overflows uint64")

	// ErrUnknownSymbol indicates that Encode met a symbol absent from the code table.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrInvalidBit indicates a bit string character other than '0' or '1', or a
	// bit that leads nowhere in the tree.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrIncompleteCode indicates that a bit string ended in the middle of a code.
	ErrIncompleteCode = errors.New("huffman: bit string ends inside a code")
)

// SymbolFreq pairs a symbol with its frequency. A slice of SymbolFreq fixes
// the insertion order used to break frequency ties.
type SymbolFreq[S comparable] struct {
	Symbol S
	Freq   uint64
}

// Node is a vertex of a Huffman tree: either a leaf carrying a Symbol, or an
// internal node with exactly two children and no symbol.
// Freq of an internal node is the sum of its children's frequencies.
//
// Each node is owned by its parent; a built tree is never mutated.
type Node[S comparable] struct {
	Symbol S        // valid for leaves only
	Freq   uint64   // symbol frequency, or subtree total for internal nodes
	Seq    uint64   // insertion sequence number used to break frequency ties
	Left   *Node[S] // subtree reached with bit '0'
	Right  *Node[S] // subtree reached with bit '1'
}

// IsLeaf reports whether n carries a symbol.
func (n *Node[S]) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Option configures tree construction.
type Option func(*Options)

// Options holds configurable parameters for Build and BuildOrdered.
type Options struct {
	// Logger receives one Debug entry per merge and a summary once the tree is
	// complete. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger returns an Option that routes construction traces to l.
// Passing nil has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
