package dict

import "errors"

// errInvalidLengths is returned by ReconstructChecked when a length vector
// recovered from an untrusted source fails the Kraft-McMillan test. Callers
// in the huffman package wrap this as a MalformedInput error.
var errInvalidLengths = errors.New("dict: code-length vector violates Kraft-McMillan inequality")
