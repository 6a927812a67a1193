package huffman

import (
	"github.com/dshamir/huffcodec/internal/bitio"
	"github.com/dshamir/huffcodec/internal/dict"
	"github.com/dshamir/huffcodec/internal/hist"
	"github.com/dshamir/huffcodec/internal/span"
	"github.com/dshamir/huffcodec/internal/tree"
)

// EncodeFile compresses inPath into outPath and returns the total
// output file size (header plus packed payload). It memory-maps the
// input read-only and the output read-write, computes the histogram
// with the dispatched parallel variant, builds the tree and canonical
// dictionary, and drives the scalar span encoder over the mapped
// output.
func EncodeFile(inPath, outPath string) (uint64, error) {
	const op = "EncodeFile"

	in, err := mapReadOnly(op, inPath)
	if err != nil {
		return 0, err
	}
	defer in.unmap()

	h := hist.Compute(in.data)
	var histArr [256]uint64
	for i, v := range h {
		histArr[i] = v
	}

	a := tree.Build(histArr)
	raw := dict.FromArena(a)
	if dict.NeedsLengthLimit(raw, dict.MaxCodeLen) {
		raw = dict.LengthLimited(histArr, dict.MaxCodeLen)
	}
	d := dict.Canonicalize(raw)
	lengths := d.Lengths()

	compressedBits := dict.CompressedSizeInBits(histArr, d)
	compressedBytes := (compressedBits + 7) / 8
	totalSize := uint64(headerSize) + compressedBytes

	out, err := mapReadWrite(op, outPath, int64(totalSize))
	if err != nil {
		return 0, err
	}
	defer out.unmap()

	hdr := header{originalSize: uint64(len(in.data)), compressedBits: compressedBits, lengths: lengths}
	copy(out.data[:headerSize], hdr.marshal())

	span.Encode(in.data, out.data[headerSize:], d)

	if err := out.unmap(); err != nil {
		return 0, newError(op, IoWrite, err)
	}

	return totalSize, nil
}

// DecodeFile reverses EncodeFile: it reads and validates the header,
// reconstructs the canonical dictionary from stored code lengths,
// builds the reverse-lookup table, and drives the table decoder over
// the mapped output.
func DecodeFile(inPath, outPath string) (uint64, error) {
	const op = "DecodeFile"

	in, err := mapReadOnly(op, inPath)
	if err != nil {
		return 0, err
	}
	defer in.unmap()

	if len(in.data) < headerSize {
		return 0, newError(op, MalformedInput, nil)
	}
	hdr := unmarshalHeader(in.data[:headerSize])

	payload := in.data[headerSize:]
	wantBytes := (hdr.compressedBits + 7) / 8
	if uint64(len(payload)) < wantBytes {
		return 0, newError(op, MalformedInput, nil)
	}

	d, err := dict.ReconstructChecked(hdr.lengths, dict.MaxCodeLen)
	if err != nil {
		return 0, newError(op, MalformedInput, err)
	}

	out, err := mapReadWrite(op, outPath, int64(hdr.originalSize))
	if err != nil {
		return 0, err
	}
	defer out.unmap()

	if hdr.originalSize > 0 {
		table := dict.BuildReverseTable(d, dict.MaxCodeLen)
		r := bitio.New(payload, hdr.compressedBits)
		if err := span.Decode(r, table, hdr.lengths, dict.MaxCodeLen, out.data); err != nil {
			return 0, newError(op, MalformedInput, err)
		}
	}

	if err := out.unmap(); err != nil {
		return 0, newError(op, IoWrite, err)
	}

	return hdr.originalSize, nil
}

// EncodeStats is EncodeFile plus a Stats summary of the run, for
// callers that want a compression-ratio report without re-deriving it
// from the output file.
func EncodeStats(inPath, outPath string) (Stats, error) {
	const op = "EncodeStats"

	in, err := mapReadOnly(op, inPath)
	if err != nil {
		return Stats{}, err
	}
	originalSize := uint64(len(in.data))
	if err := in.unmap(); err != nil {
		return Stats{}, newError(op, IoRead, err)
	}

	if _, err := EncodeFile(inPath, outPath); err != nil {
		return Stats{}, err
	}

	out, err := mapReadOnly(op, outPath)
	if err != nil {
		return Stats{}, err
	}
	defer out.unmap()
	if len(out.data) < headerSize {
		return Stats{}, newError(op, MalformedInput, nil)
	}
	hdr := unmarshalHeader(out.data[:headerSize])
	return statsFrom(originalSize, hdr.compressedBits, hdr.lengths), nil
}
