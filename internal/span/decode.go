package span

import (
	"github.com/dshamir/huffcodec/internal/bitio"
)

// Decode reverses Encode: it peeks maxLen bits at a time from r, maps
// them through table to a symbol, writes the symbol to dst, then
// advances r by that symbol's true code length (looked up in lengths).
// It stops once r reports done, which for a well-formed stream happens
// exactly after len(dst) symbols have been written.
func Decode(r *bitio.Reader, table []uint16, lengths [256]uint16, maxLen int, dst []byte) error {
	i := 0
	for !r.Done() {
		peeked, err := peekUpTo(r, maxLen)
		if err != nil {
			return err
		}
		sym := table[peeked]
		l := lengths[sym]
		if err := r.Advance(uint(l)); err != nil {
			return err
		}
		if i >= len(dst) {
			return errDecodeOverrun
		}
		dst[i] = byte(sym)
		i++
	}
	return nil
}

// peekUpTo reads up to n bits without advancing, left-padding the result
// with zero low-order bits when fewer than n bits remain before the
// declared end of the stream. The final peek of a stream may have fewer
// than maxLen valid bits left even though one symbol's worth remains,
// since the reverse table is built assuming a full maxLen-bit peek; the
// short tail is padded because the table maps a code by its high bits
// only, regardless of what follows.
func peekUpTo(r *bitio.Reader, n int) (uint64, error) {
	remaining := r.Remaining()
	if remaining >= uint64(n) {
		return r.Read(uint(n))
	}
	v, err := r.Read(uint(remaining))
	if err != nil {
		return 0, err
	}
	return v << (uint(n) - uint(remaining)), nil
}
