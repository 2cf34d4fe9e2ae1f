// Package lvlheap is an in-memory playground for heaps and the greedy
// algorithms built on them — from the raw binary heap up to Huffman coding.
//
// 🚀 What is lvlheap?
//
//	A small, dependency-light library that brings together:
//		• heap:    array-backed binary min/max heap, O(n) build, heapsort, tree rendering
//		• pqueue:  priority queue with FIFO order among equal priorities
//		• huffman: deterministic Huffman trees, code tables, encode/decode
//		• greedy:  interval scheduling, fractional knapsack, change making, Kruskal MST
//
// ✨ Why choose lvlheap?
//
//   - Beginner-friendly – each package is one idea with a short API
//   - Deterministic – ties are broken by insertion order, so the same input
//     always gives the same output
//   - Observable – plug in a zap logger to trace every Huffman merge
//
// Layering:
//
//	heap     ← pqueue ← huffman
//	  ↖__________↖_____ greedy
//
// Quick ASCII example of a min-heap after inserting 5, 3, 8, 1:
//
//	      1
//	     / \
//	    3   8
//	   /
//	  5
//
// None of the types lock internally; share an instance across goroutines only
// behind your own mutex.
//
//	go get github.com/katalvlaran/lvlheap
package lvlheap
