package huffman

import "fmt"

// Kind classifies a huffman codec failure. Every fallible operation in
// this package reports one of these instead of an ad hoc string, so
// callers can branch with errors.As without parsing messages.
type Kind int

const (
	// IoOpen means the input or output file could not be opened.
	IoOpen Kind = iota
	// IoStat means the input's size could not be determined.
	IoStat
	// IoMap means a memory-map call failed.
	IoMap
	// IoTruncate means resizing the output file failed.
	IoTruncate
	// IoRead means a non-mmap read failed or was short.
	IoRead
	// IoWrite means a non-mmap write failed or was short.
	IoWrite
	// MalformedInput means a compressed file is smaller than its header,
	// or declares sizes inconsistent with its own payload.
	MalformedInput
	// InvalidArgument means a caller violated an operation's contract
	// (read(n) with n > 64, an array sized other than 256 or 2^L).
	InvalidArgument
	// OutOfRange means a bit-reader cursor operation went past the
	// declared end of its span.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case IoOpen:
		return "io-open"
	case IoStat:
		return "io-stat"
	case IoMap:
		return "io-map"
	case IoTruncate:
		return "io-truncate"
	case IoRead:
		return "io-read"
	case IoWrite:
		return "io-write"
	case MalformedInput:
		return "malformed-input"
	case InvalidArgument:
		return "invalid-argument"
	case OutOfRange:
		return "out-of-range"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every exported operation in this
// package returns on failure. Op names the operation that failed
// (e.g. "EncodeFile"); Kind classifies the failure; Err, when present,
// is the underlying cause (an *os.PathError, a syscall error, etc.).
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("huffman: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("huffman: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}
