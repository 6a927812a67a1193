// Package huffman implements a byte-level canonical Huffman codec over
// memory-mapped files: parallel histogram computation, an arena+heap tree
// builder, canonical dictionary construction, three bit-exact span-encoder
// variants, and a table-driven span decoder. See EncodeFile and DecodeFile
// for the package's entry points.
//
// The internal packages mirror the pipeline: internal/hist computes
// histograms, internal/tree builds the node arena, internal/dict derives and
// canonicalizes codes, internal/bitio and internal/span pack and unpack the
// bitstream, and internal/threadteam provides the bounded fork-join worker
// team every parallel variant partitions across.
package huffman

