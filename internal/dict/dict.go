// Package dict derives per-symbol bit codes from a Huffman tree arena,
// canonicalizes them so the on-disk format only needs to persist code
// lengths, and builds the flat reverse-lookup table the span decoder peeks
// into.
package dict

import "github.com/dshamir/huffcodec/internal/tree"

// MaxCodeLen is the ceiling on canonical code length this codec supports,
// implied by the arena's 2*256-1 node bound, and the size of the decoder's
// flat reverse table (2^MaxCodeLen entries). When the tree built by
// package tree yields a longer code, huffman.EncodeFile replaces it with
// LengthLimited's codes, which never exceed this bound.
const MaxCodeLen = 9

// Code is a variable-length bit code, stored as a right-aligned unsigned
// integer of Len bits: bit Len-1 of Bits is the first bit transmitted
// (MSB-first), bit 0 is the last.
type Code struct {
	Bits uint64
	Len  uint8
}

// Dictionary maps each byte value to its code. A zero Len means the symbol
// does not appear in the input.
type Dictionary [256]Code

// FromArena walks the arena via an explicit stack, accumulating the bit
// path to each leaf, and returns the raw (non-canonical) dictionary. Each
// stack frame carries a node index and the path taken to reach it; at an
// internal node the right child is pushed with path|1 and the left child
// with path|0, so the left subtree is always explored depth-first before
// its sibling once popped (order does not matter for correctness, since
// canonicalization discards raw code values and keeps only lengths).
func FromArena(a tree.Arena) Dictionary {
	var d Dictionary
	if a.Len() == 0 {
		return d
	}

	type frame struct {
		index int
		bits  uint64
		depth uint8
	}
	stack := []frame{{index: a.Root(), bits: 0, depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := a[f.index]
		if n.IsLeaf {
			if f.depth == 0 {
				// Single-symbol arena: the root is a leaf at depth 0, so
				// it gets a one-bit code, whose length Canonicalize keeps.
				d[n.Symbol] = Code{Bits: 0, Len: 1}
			} else {
				d[n.Symbol] = Code{Bits: f.bits, Len: f.depth}
			}
			continue
		}

		stack = append(stack,
			frame{index: n.Right, bits: (f.bits << 1) | 1, depth: f.depth + 1},
			frame{index: n.Left, bits: f.bits << 1, depth: f.depth + 1},
		)
	}

	return d
}

// Lengths extracts the code length of every present symbol.
func (d Dictionary) Lengths() [256]uint16 {
	var lens [256]uint16
	for i, c := range d {
		lens[i] = uint16(c.Len)
	}
	return lens
}

// CompressedSizeInBits computes sum(hist[s] * len(dict[s])) over all
// symbols, the exact number of bits the span encoder will produce.
func CompressedSizeInBits(hist [256]uint64, d Dictionary) uint64 {
	var total uint64
	for s := 0; s < 256; s++ {
		total += hist[s] * uint64(d[s].Len)
	}
	return total
}
