package huffman

import "github.com/dshamir/huffcodec/internal/cpu"

// Optimized reports whether the codec's parallel histogram kernels are
// active on this machine. It returns false on single-core machines, where
// EncodeFile computes its histogram with the scalar kernel. EncodeFile's
// span encoding and all of DecodeFile are scalar either way.
func Optimized() bool {
	return cpu.Optimized()
}
