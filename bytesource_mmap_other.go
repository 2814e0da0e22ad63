//go:build !unix

package parquet

import "fmt"

// MappedFileByteSource is unavailable on this platform; use
// NewFileByteSource instead.
type MappedFileByteSource struct{}

// NewMappedFileByteSource always fails outside unix-family platforms.
func NewMappedFileByteSource(path string) (*MappedFileByteSource, error) {
	return nil, fmt.Errorf("parquet: memory-mapped file access is not supported on this platform")
}
