package dict

import "sort"

// symLen pairs a present symbol with its code length, the unit
// canonicalization sorts and walks.
type symLen struct {
	sym byte
	len uint8
}

func presentSymbols(lens func(sym int) uint8) []symLen {
	var pairs []symLen
	for s := 0; s < 256; s++ {
		if l := lens(s); l > 0 {
			pairs = append(pairs, symLen{sym: byte(s), len: l})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].len != pairs[j].len {
			return pairs[i].len < pairs[j].len
		}
		return pairs[i].sym < pairs[j].sym
	})
	return pairs
}

// NextCanonical computes the successor of prev in canonical order: prev's
// bit pattern incremented by one as a big-endian integer of prev's own
// length. If the carry propagates past the top bit, the result is one bit
// longer than prev (the "prepend a 1" case described for exhausted code
// spaces). NextCanonical does not pad for a longer target length; callers
// that need the next code at a specific target length must left-pad the
// result themselves, since that padding depends on information (the next
// symbol's length) this function doesn't have.
func NextCanonical(prev Code) Code {
	v := prev.Bits + 1
	length := prev.Len
	if v == uint64(1)<<prev.Len {
		length++
	}
	return Code{Bits: v, Len: length}
}

// padTo left-pads code (conceptually, extends its bit string on the right
// with zero low-order bits so its leading bits are unchanged) until it
// reaches targetLen.
func padTo(c Code, targetLen uint8) Code {
	if targetLen <= c.Len {
		return c
	}
	return Code{Bits: c.Bits << (targetLen - c.Len), Len: targetLen}
}

// Canonicalize replaces d's raw codes with the canonical assignment that
// preserves each symbol's code length: present symbols are ordered by
// (length asc, symbol asc), the first gets an all-zero code of its length,
// and each subsequent code is NextCanonical of the previous, padded up to
// its own target length.
func Canonicalize(d Dictionary) Dictionary {
	pairs := presentSymbols(func(s int) uint8 { return d[s].Len })
	return assignCanonical(pairs)
}

// Reconstruct rebuilds a canonical dictionary purely from a stored
// code-length vector, the operation a decoder performs after reading the
// file header: present symbols are recovered from nonzero lengths, sorted
// the same way, and walked through the same recurrence.
func Reconstruct(lengths [256]uint16) Dictionary {
	pairs := presentSymbols(func(s int) uint8 { return uint8(lengths[s]) })
	return assignCanonical(pairs)
}

// ReconstructChecked is Reconstruct plus a Kraft-McMillan sanity check on
// lengths before trusting them, for the case where lengths came from an
// on-disk header rather than from this process's own Canonicalize call. It
// reports an error instead of building garbage codes when the length
// vector could not have come from any valid prefix code.
func ReconstructChecked(lengths [256]uint16, maxLen int) (Dictionary, error) {
	if !kraftMcMillanHolds(lengths, maxLen) {
		return Dictionary{}, errInvalidLengths
	}
	return Reconstruct(lengths), nil
}

func assignCanonical(pairs []symLen) Dictionary {
	var d Dictionary
	if len(pairs) == 0 {
		return d
	}

	prev := Code{Bits: 0, Len: pairs[0].len}
	d[pairs[0].sym] = prev
	for i := 1; i < len(pairs); i++ {
		next := NextCanonical(prev)
		next = padTo(next, pairs[i].len)
		d[pairs[i].sym] = next
		prev = next
	}
	return d
}
