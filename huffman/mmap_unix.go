//go:build unix

package huffman

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapping is a memory-mapped file region plus the descriptor it came
// from. The codec never retains a mapping past the call that created
// it: every mapping it opens, it unmaps before returning.
type mapping struct {
	data   []byte
	file   *os.File
	closed bool
}

// mapReadOnly opens path and maps its full contents read-only. The
// returned mapping's data has length equal to the file's size.
func mapReadOnly(op, path string) (*mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(op, IoOpen, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, newError(op, IoStat, err)
	}
	size := info.Size()
	if size == 0 {
		return &mapping{data: nil, file: f}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, newError(op, IoMap, err)
	}
	return &mapping{data: data, file: f}, nil
}

// mapReadWrite creates or truncates path to size and maps it
// read-write.
func mapReadWrite(op, path string, size int64) (*mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, newError(op, IoOpen, err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, newError(op, IoTruncate, err)
	}
	if size == 0 {
		return &mapping{data: nil, file: f}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, newError(op, IoMap, err)
	}
	return &mapping{data: data, file: f}, nil
}

// unmap releases the mapping's memory and closes its file descriptor.
// It is a no-op on a mapping already unmapped (drivers defer unmap as a
// safety net on every exit path, including one that already unmapped
// explicitly to check the error) and safe on one whose data is nil (the
// zero-length file case never mapped anything).
func (m *mapping) unmap() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}
