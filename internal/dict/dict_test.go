package dict

import (
	"testing"

	"github.com/dshamir/huffcodec/internal/tree"
)

func buildDict(hist [256]uint64) Dictionary {
	return Canonicalize(FromArena(tree.Build(hist)))
}

func TestFromArenaEmpty(t *testing.T) {
	d := FromArena(tree.Build([256]uint64{}))
	for _, c := range d {
		if c.Len != 0 {
			t.Fatalf("empty input produced a non-zero code")
		}
	}
}

func TestFromArenaSingleSymbol(t *testing.T) {
	var hist [256]uint64
	hist['A'] = 5
	d := buildDict(hist)
	if d['A'].Len != 1 {
		t.Fatalf("single-symbol code length = %d, want 1", d['A'].Len)
	}
}

func TestCanonicalAbracadabra(t *testing.T) {
	var hist [256]uint64
	hist['a'] = 5
	hist['b'] = 2
	hist['r'] = 2
	hist['c'] = 1
	hist['d'] = 1
	d := buildDict(hist)

	want := map[byte]Code{
		'a': {Bits: 0, Len: 1},
		'b': {Bits: 0b100, Len: 3},
		'c': {Bits: 0b101, Len: 3},
		'd': {Bits: 0b110, Len: 3},
		'r': {Bits: 0b111, Len: 3},
	}
	for sym, c := range want {
		got := d[sym]
		if got != c {
			t.Fatalf("dict[%q] = %+v, want %+v", sym, got, c)
		}
	}
}

func TestCanonicalStrictlyIncreasingWithinLength(t *testing.T) {
	var hist [256]uint64
	for i := 0; i < 256; i++ {
		hist[i] = uint64(i + 1)
	}
	d := buildDict(hist)

	pairs := presentSymbols(func(s int) uint8 { return d[s].Len })
	for i := 1; i < len(pairs); i++ {
		a, b := d[pairs[i-1].sym], d[pairs[i].sym]
		if a.Len == b.Len && b.Bits <= a.Bits {
			t.Fatalf("codes not strictly increasing within length %d: %v <= %v", a.Len, b.Bits, a.Bits)
		}
	}
}

func TestCanonicalPrefixFree(t *testing.T) {
	var hist [256]uint64
	hist['a'] = 5
	hist['b'] = 2
	hist['r'] = 2
	hist['c'] = 1
	hist['d'] = 1
	d := buildDict(hist)

	type entry struct {
		sym byte
		c   Code
	}
	var entries []entry
	for s, c := range d {
		if c.Len > 0 {
			entries = append(entries, entry{byte(s), c})
		}
	}
	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			a, b := entries[i].c, entries[j].c
			if a.Len >= b.Len {
				continue
			}
			shifted := b.Bits >> (b.Len - a.Len)
			if shifted == a.Bits {
				t.Fatalf("code for %q is a prefix of code for %q", entries[i].sym, entries[j].sym)
			}
		}
	}
}

func TestReconstructMatchesCanonicalize(t *testing.T) {
	var hist [256]uint64
	hist['a'] = 5
	hist['b'] = 2
	hist['r'] = 2
	hist['c'] = 1
	hist['d'] = 1
	canon := buildDict(hist)
	rebuilt := Reconstruct(canon.Lengths())

	if canon != rebuilt {
		t.Fatalf("Reconstruct(canon.Lengths()) != canon\ngot:  %+v\nwant: %+v", rebuilt, canon)
	}
}

func TestReconstructCheckedRejectsOverfullLengths(t *testing.T) {
	var lengths [256]uint16
	lengths['a'] = 1
	lengths['b'] = 1
	lengths['c'] = 1 // three length-1 codes cannot coexist: 3 > 2^1
	_, err := ReconstructChecked(lengths, MaxCodeLen)
	if err == nil {
		t.Fatal("expected an error for an overfull length vector, got nil")
	}
}

func TestReconstructCheckedAcceptsValidLengths(t *testing.T) {
	var hist [256]uint64
	hist['a'] = 5
	hist['b'] = 2
	hist['r'] = 2
	hist['c'] = 1
	hist['d'] = 1
	canon := buildDict(hist)

	got, err := ReconstructChecked(canon.Lengths(), MaxCodeLen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != canon {
		t.Fatalf("ReconstructChecked result != Canonicalize result")
	}
}

func TestCompressedSizeInBits(t *testing.T) {
	var hist [256]uint64
	hist['a'] = 5
	hist['b'] = 2
	hist['r'] = 2
	hist['c'] = 1
	hist['d'] = 1
	d := buildDict(hist)

	got := CompressedSizeInBits(hist, d)
	want := uint64(5*1 + 2*3 + 2*3 + 1*3 + 1*3)
	if got != want {
		t.Fatalf("CompressedSizeInBits = %d, want %d", got, want)
	}
}

func TestBuildReverseTableRoundTrip(t *testing.T) {
	var hist [256]uint64
	hist['a'] = 5
	hist['b'] = 2
	hist['r'] = 2
	hist['c'] = 1
	hist['d'] = 1
	d := buildDict(hist)

	table := BuildReverseTable(d, MaxCodeLen)
	for sym, c := range d {
		if c.Len == 0 {
			continue
		}
		shift := uint(MaxCodeLen) - uint(c.Len)
		idx := c.Bits << shift
		if got := table[idx]; got != uint16(sym) {
			t.Fatalf("table[%d] = %d, want %d", idx, got, sym)
		}
	}
}

func TestAllUniform256Symbols(t *testing.T) {
	var hist [256]uint64
	for i := range hist {
		hist[i] = 4
	}
	d := buildDict(hist)
	for _, c := range d {
		if c.Len == 0 {
			t.Fatal("uniform histogram over all 256 symbols left a symbol uncoded")
		}
	}
}

func TestTwoSymbolAAAB(t *testing.T) {
	var hist [256]uint64
	hist['A'] = 3
	hist['B'] = 1
	d := buildDict(hist)
	if d['A'].Len != 1 || d['B'].Len != 1 {
		t.Fatalf("two-symbol histogram codes = %+v, %+v, want both length 1", d['A'], d['B'])
	}
}
