package huffman

// Stats summarizes a completed encode, the way the original tooling
// reports compression ratio and alphabet shape after a run. It plays no
// role in decode and is never persisted; it is derived entirely from
// values the encoder already computed.
type Stats struct {
	// OriginalSize is the input size in bytes.
	OriginalSize uint64
	// CompressedBits is the exact packed payload size in bits.
	CompressedBits uint64
	// SymbolCount is the number of distinct byte values present in the
	// input (nonzero histogram bins).
	SymbolCount int
	// LongestCodeLength is the maximum code length assigned to any
	// present symbol.
	LongestCodeLength int
}

// Ratio returns the payload size in whole bytes, ceil(CompressedBits/8),
// divided by OriginalSize, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64((s.CompressedBits+7)/8) / float64(s.OriginalSize)
}

func statsFrom(originalSize uint64, compressedBits uint64, lengths [256]uint16) Stats {
	s := Stats{OriginalSize: originalSize, CompressedBits: compressedBits}
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		s.SymbolCount++
		if int(l) > s.LongestCodeLength {
			s.LongestCodeLength = int(l)
		}
	}
	return s
}
