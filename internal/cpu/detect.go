// Package cpu reports the capability level the codec's multi-variant
// histogram kernels should target on the current machine.
// It determines whether the word-unrolled and vectorized-merge paths are
// worth taking, the way an optimized compression library decides whether to
// fall back to its scalar kernel.
package cpu

import "runtime"

// Level describes how aggressively the codec's parallel kernels should be
// applied.
//
//   - 0: scalar only, not worth spinning up a thread team (single core).
//   - 1: thread team available, scalar-per-worker kernel.
//   - 2: thread team available, word-unrolled-per-worker kernel.
//   - 3: thread team available, word-unrolled kernel with a vectorizable
//     bin-wise merge.
type Level int

const (
	LevelScalar          Level = 0
	LevelThreaded        Level = 1
	LevelWordUnrolled    Level = 2
	LevelVectorizedMerge Level = 3
)

// ArchLevel is the capability level detected at package init time.
var ArchLevel = detectLevel()

// Optimized reports whether any parallel kernel is worth using on this
// machine. When false, callers should stick to the scalar path.
func Optimized() bool {
	return ArchLevel > LevelScalar
}

func detectLevel() Level {
	if runtime.NumCPU() <= 1 {
		return LevelScalar
	}
	return LevelVectorizedMerge
}

// MinParallelBytes is the input size below which spinning up a thread team
// costs more than it saves; callers below this threshold use the scalar
// kernel regardless of ArchLevel.
const MinParallelBytes = 64 * 1024
