package dict

// BuildReverseTable allocates a 2^maxLen-entry table where each entry holds
// the symbol whose canonical code, left-padded to maxLen bits, equals the
// entry's index. Because canonical codes are prefix-free, the ranges filled
// in for distinct symbols never overlap: a symbol with code c of length l
// fills the 2^(maxLen-l) consecutive entries starting at c<<(maxLen-l).
func BuildReverseTable(d Dictionary, maxLen int) []uint16 {
	table := make([]uint16, 1<<uint(maxLen))
	for sym, c := range d {
		if c.Len == 0 {
			continue
		}
		shift := uint(maxLen) - uint(c.Len)
		start := c.Bits << shift
		span := uint64(1) << shift
		for i := uint64(0); i < span; i++ {
			table[start+i] = uint16(sym)
		}
	}
	return table
}
