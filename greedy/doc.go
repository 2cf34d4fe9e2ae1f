// Package greedy collects classic greedy algorithms that share the
// "repeatedly take the best remaining candidate" shape of Huffman coding:
//
//   - IntervalScheduling  maximum set of non-overlapping intervals (earliest end first)
//   - FractionalKnapsack  best value with divisible items (highest value density first)
//   - CoinChange          change-making with the largest coins first
//   - KruskalMST          minimum spanning forest (lightest edge first, UnionFind)
//
// Candidate ordering is done with heap.SortFunc and pqueue, so ties resolve
// deterministically in input order.
package greedy
