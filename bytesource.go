package parquet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/goparquet/goparquet/internal/debug"
)

// ByteSource is the collaborator contract for file access: an abstraction over a
// file or HTTP range-addressable blob. The core never reads outside a
// slice it requested, and never assumes Slice is synchronous.
type ByteSource interface {
	// Len returns the total byte length of the underlying blob.
	Len(ctx context.Context) (int64, error)

	// Slice returns the bytes in [start, end). Implementations may perform
	// I/O on every call; the core treats this as a potentially-suspending
	// operation.
	Slice(ctx context.Context, start, end int64) ([]byte, error)
}

// FileByteSource adapts an *os.File, read with ReadAt, into a ByteSource
// for local files.
type FileByteSource struct {
	f    *os.File
	size int64
}

// NewFileByteSource opens path and stats it once, up front, so that
// subsequent Len calls never touch the filesystem.
func NewFileByteSource(path string) (*FileByteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &FileByteSource{f: f, size: info.Size()}, nil
}

// Close releases the underlying file descriptor.
func (s *FileByteSource) Close() error { return s.f.Close() }

func (s *FileByteSource) Len(context.Context) (int64, error) { return s.size, nil }

func (s *FileByteSource) Slice(_ context.Context, start, end int64) ([]byte, error) {
	if start < 0 || end < start || end > s.size {
		return nil, fmt.Errorf("parquet: slice [%d,%d) out of range for file of size %d", start, end, s.size)
	}
	buf := make([]byte, end-start)
	if _, err := s.f.ReadAt(buf, start); err != nil {
		return nil, fmt.Errorf("parquet: reading file range [%d,%d): %w", start, end, err)
	}
	debug.Format("bytesource: file slice [%d,%d)", start, end)
	return buf, nil
}

// HTTPByteSource adapts a URL served with Range-request support (the common
// case for object storage presigned URLs and static file servers) into a
// ByteSource, for reading remote files without downloading them whole.
type HTTPByteSource struct {
	Client *http.Client
	URL    string

	size int64
}

// NewHTTPByteSource issues a HEAD request to learn the object's size, so
// that a caller can compute row-range byte spans before issuing any GET.
func NewHTTPByteSource(ctx context.Context, client *http.Client, url string) (*HTTPByteSource, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parquet: HEAD %s: unexpected status %s", url, resp.Status)
	}
	return &HTTPByteSource{Client: client, URL: url, size: resp.ContentLength}, nil
}

func (s *HTTPByteSource) Len(context.Context) (int64, error) { return s.size, nil }

func (s *HTTPByteSource) Slice(ctx context.Context, start, end int64) ([]byte, error) {
	if start < 0 || end < start || end > s.size {
		return nil, fmt.Errorf("parquet: slice [%d,%d) out of range for object of size %d", start, end, s.size)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", "bytes="+strconv.FormatInt(start, 10)+"-"+strconv.FormatInt(end-1, 10))
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusPartialContent && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parquet: GET %s range [%d,%d): unexpected status %s", s.URL, start, end, resp.Status)
	}
	debug.Format("bytesource: http range [%d,%d)", start, end)
	return io.ReadAll(resp.Body)
}
