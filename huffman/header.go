package huffman

import "encoding/binary"

// headerSize is the fixed on-disk header layout: 8 bytes original size,
// 8 bytes compressed payload size in bits, 512 bytes of 256 16-bit code
// lengths indexed by symbol. All integers are native little-endian;
// cross-architecture portability of the header is explicitly out of
// scope.
const headerSize = 8 + 8 + 256*2

type header struct {
	originalSize   uint64
	compressedBits uint64
	lengths        [256]uint16
}

func (h *header) marshal() []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(buf[0:8], h.originalSize)
	binary.LittleEndian.PutUint64(buf[8:16], h.compressedBits)
	for i, l := range h.lengths {
		binary.LittleEndian.PutUint16(buf[16+i*2:18+i*2], l)
	}
	return buf
}

func unmarshalHeader(buf []byte) header {
	var h header
	h.originalSize = binary.LittleEndian.Uint64(buf[0:8])
	h.compressedBits = binary.LittleEndian.Uint64(buf[8:16])
	for i := range h.lengths {
		h.lengths[i] = binary.LittleEndian.Uint16(buf[16+i*2 : 18+i*2])
	}
	return h
}
