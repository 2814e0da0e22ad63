//go:build unix

package parquet

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/goparquet/goparquet/internal/debug"
)

// MappedFileByteSource is a ByteSource backed by a read-only mmap of a
// local file, avoiding a read syscall per Slice call for files that
// fit comfortably in the address space.
type MappedFileByteSource struct {
	f    *os.File
	data []byte
}

// NewMappedFileByteSource opens path and maps its full contents
// read-only. Close unmaps and closes the file.
func NewMappedFileByteSource(path string) (*MappedFileByteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		f.Close()
		return nil, fmt.Errorf("parquet: cannot mmap empty file %s", path)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parquet: mmap %s: %w", path, err)
	}
	debug.Format("bytesource: mapped %s (%d bytes)", path, size)
	return &MappedFileByteSource{f: f, data: data}, nil
}

// Close unmaps the file and releases the file descriptor.
func (s *MappedFileByteSource) Close() error {
	err := unix.Munmap(s.data)
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *MappedFileByteSource) Len(context.Context) (int64, error) { return int64(len(s.data)), nil }

func (s *MappedFileByteSource) Slice(_ context.Context, start, end int64) ([]byte, error) {
	if start < 0 || end < start || end > int64(len(s.data)) {
		return nil, fmt.Errorf("parquet: slice [%d,%d) out of range for mapped file of size %d", start, end, len(s.data))
	}
	// The mapping stays valid for the lifetime of s, so this slice may be
	// returned without copying; callers must not retain it past Close.
	return s.data[start:end], nil
}
