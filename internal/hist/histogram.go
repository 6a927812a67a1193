// Package hist computes per-byte frequency histograms over an input
// buffer, in four variants that trade code complexity for throughput:
// a plain scalar pass, a threaded pass, a threaded pass that loads data
// eight bytes at a time, and a threaded+word-unrolled pass whose partial
// merge is written for the compiler to auto-vectorize.
package hist

import (
	"encoding/binary"

	"github.com/dshamir/huffcodec/internal/cpu"
	"github.com/dshamir/huffcodec/internal/threadteam"
)

// Histogram is a 256-bin byte frequency table.
type Histogram [256]uint64

// ComputeScalar visits every byte once, single-threaded. It is the
// reference implementation every other variant must agree with.
func ComputeScalar(data []byte) Histogram {
	var h Histogram
	for _, b := range data {
		h[b]++
	}
	return h
}

// ComputeThreaded splits data into one chunk per worker, accumulates a
// private histogram per chunk, and sums them into the result. Each byte
// is visited with a plain scalar loop; only the chunking is parallel.
func ComputeThreaded(data []byte) Histogram {
	n := len(data)
	if n == 0 {
		return Histogram{}
	}
	workers := threadteam.Size()
	if workers > n {
		workers = n
	}
	partials := make([]Histogram, workers)

	threadteam.Run(n, func(worker, start, end int) {
		local := &partials[worker]
		for _, b := range data[start:end] {
			local[b]++
		}
	})

	return merge(partials)
}

// ComputeThreadedWordUnrolled is ComputeThreaded, but each worker
// extracts eight bytes at a time from a little-endian word load instead
// of indexing the slice byte by byte, the way the original distinguishes
// "64-bit loading" from plain threaded scanning.
func ComputeThreadedWordUnrolled(data []byte) Histogram {
	n := len(data)
	if n == 0 {
		return Histogram{}
	}
	workers := threadteam.Size()
	if workers > n {
		workers = n
	}
	partials := make([]Histogram, workers)

	threadteam.Run(n, func(worker, start, end int) {
		wordScan(&partials[worker], data[start:end])
	})

	return merge(partials)
}

// ComputeThreadedWordUnrolledVectorizedMerge is
// ComputeThreadedWordUnrolled, but the final bin-wise sum across workers
// is written as a flat loop over a fixed-size array with no branches and
// no dependency between iterations, the shape the Go compiler's
// auto-vectorizer (and a human reading alongside `#pragma omp simd`) can
// turn into SIMD adds.
func ComputeThreadedWordUnrolledVectorizedMerge(data []byte) Histogram {
	n := len(data)
	if n == 0 {
		return Histogram{}
	}
	workers := threadteam.Size()
	if workers > n {
		workers = n
	}
	partials := make([]Histogram, workers)

	threadteam.Run(n, func(worker, start, end int) {
		wordScan(&partials[worker], data[start:end])
	})

	return mergeVectorized(partials)
}

// Compute dispatches to the fastest variant the detected architecture
// level supports, falling back to the scalar path for small inputs where
// thread setup would dominate the work.
func Compute(data []byte) Histogram {
	if len(data) < cpu.MinParallelBytes || threadteam.Size() <= 1 {
		return ComputeScalar(data)
	}
	switch cpu.ArchLevel {
	case cpu.LevelVectorizedMerge:
		return ComputeThreadedWordUnrolledVectorizedMerge(data)
	case cpu.LevelWordUnrolled:
		return ComputeThreadedWordUnrolled(data)
	case cpu.LevelThreaded:
		return ComputeThreaded(data)
	default:
		return ComputeScalar(data)
	}
}

// wordScan accumulates freqs by reading data eight bytes at a time via a
// little-endian word load, falling back to byte-at-a-time for the
// trailing remainder. Words are taken from the start of data with no
// alignment step: the leading loop counts from index 0, so it never
// runs, and binary.LittleEndian.Uint64 accepts any alignment.
func wordScan(h *Histogram, data []byte) {
	i := 0
	for i < len(data) && i%8 != 0 {
		h[data[i]]++
		i++
	}
	for ; i+8 <= len(data); i += 8 {
		word := binary.LittleEndian.Uint64(data[i : i+8])
		h[word>>0&0xFF]++
		h[word>>8&0xFF]++
		h[word>>16&0xFF]++
		h[word>>24&0xFF]++
		h[word>>32&0xFF]++
		h[word>>40&0xFF]++
		h[word>>48&0xFF]++
		h[word>>56&0xFF]++
	}
	for ; i < len(data); i++ {
		h[data[i]]++
	}
}

func merge(partials []Histogram) Histogram {
	var h Histogram
	for _, p := range partials {
		for bin := 0; bin < 256; bin++ {
			h[bin] += p[bin]
		}
	}
	return h
}

// mergeVectorized performs the same reduction as merge, structured as a
// single flat accumulate loop per partial with no early exits, matching
// the shape the original marks with an explicit SIMD pragma.
func mergeVectorized(partials []Histogram) Histogram {
	var h Histogram
	for t := 0; t < len(partials); t++ {
		p := &partials[t]
		for bin := 0; bin < 256; bin++ {
			h[bin] += p[bin]
		}
	}
	return h
}
