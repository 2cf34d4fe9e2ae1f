// Package huffman builds deterministic Huffman codes on top of pqueue.
//
// Given a table of symbol frequencies, Build repeatedly merges the two
// lightest subtrees into a parent whose weight is their sum, until a single
// tree remains. Walking that tree depth-first, appending '0' on every left
// edge and '1' on every right edge, yields one code per leaf:
//
//	freqs: a:45 b:13 c:12 d:16 e:9 f:5
//
//	            (100)
//	           0/   \1
//	          a     (55)
//	              0/    \1
//	           (25)      (30)
//	          0/  \1    0/  \1
//	          c    b  (14)   d
//	                 0/  \1
//	                 f    e
//
//	a=0  c=100  b=101  f=1100  e=1101  d=111
//
// Determinism: every node pushed into the queue gets the next sequence
// number, and ties on frequency go to the lower number (first inserted, first
// merged). With the same table and the same seeding order two runs produce
// identical trees bit for bit. Build seeds in ascending symbol order;
// BuildOrdered takes the order from its argument.
//
// Guarantees: codes are leaves of a full binary tree, so the table is
// prefix-free and no two symbols share a code. A lone symbol is coded "0".
//
// Errors:
//
//   - ErrDuplicateSymbol    a symbol listed twice in BuildOrdered
//   - ErrFrequencyOverflow  the total frequency exceeds uint64
//   - ErrLengthOverflow     WeightedLength beyond uint64
//   - ErrEmptyTree          Encode/Decode of non-empty input on an empty tree
//   - ErrUnknownSymbol      Encode of a symbol outside the tree
//   - ErrInvalidBit         Decode of a character other than '0'/'1'
//   - ErrIncompleteCode     Decode input that stops inside a code
package huffman
