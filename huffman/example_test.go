package huffman_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlheap/huffman"
)

// ExampleBuildCodes builds the textbook code table and prints it in symbol order.
func ExampleBuildCodes() {
	freqs := map[string]uint64{"a": 45, "b": 13, "c": 12, "d": 16, "e": 9, "f": 5}
	codes, err := huffman.BuildCodes(freqs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	symbols := make([]string, 0, len(codes))
	for s := range codes {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	for _, s := range symbols {
		fmt.Println(s, codes[s])
	}
	total, err := huffman.WeightedLength(freqs, codes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("bits:", total)

	// Output:
	// a 0
	// b 101
	// c 100
	// d 111
	// e 1101
	// f 1100
	// bits: 224
}

// ExampleTree_Decode compresses a short message and restores it.
func ExampleTree_Decode() {
	msg := []rune("mississippi")
	tree, _ := huffman.Build(huffman.Frequencies(msg))

	bits, _ := tree.Encode(msg)
	back, _ := tree.Decode(bits)

	fmt.Println(len(bits), "bits")
	fmt.Println(string(back))

	// Output:
	// 21 bits
	// mississippi
}
