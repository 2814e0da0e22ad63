package parquet

import (
	"fmt"

	"github.com/goparquet/goparquet/compress"
	"github.com/goparquet/goparquet/compress/brotli"
	"github.com/goparquet/goparquet/compress/gzip"
	"github.com/goparquet/goparquet/compress/lz4"
	"github.com/goparquet/goparquet/compress/snappy"
	"github.com/goparquet/goparquet/compress/uncompressed"
	"github.com/goparquet/goparquet/compress/zstd"
	"github.com/goparquet/goparquet/format"
)

// DefaultCodecs returns a Registry wired with every codec this package
// implements. It lives here rather than in package compress itself because
// it imports every codec subpackage, and the gzip, zstd and brotli
// subpackages import compress for the Reader/Decompressor types: building
// the registry inside compress would be an import cycle.
func DefaultCodecs() compress.Registry {
	return compress.Registry{
		format.Uncompressed: &uncompressed.Codec{},
		format.Snappy:       &snappy.Codec{},
		format.Gzip:         &gzip.Codec{},
		format.Zstd:         &zstd.Codec{},
		format.Lz4Raw:       &lz4.Codec{},
		format.Brotli:       &brotli.Codec{},
	}
}

// ReadConfig controls what ReadRows reads and how it fetches bytes.
type ReadConfig struct {
	// Columns restricts the read to these dot-joined schema paths. A nil
	// slice reads every leaf column.
	Columns []string

	// RowStart and RowEnd bound the rows read, as a half-open
	// [RowStart, RowEnd) range over the file's logical row numbers. A zero
	// RowEnd means "through the end of the file".
	RowStart int64
	RowEnd   int64

	// Codecs resolves a column chunk's compression codec. DefaultCodecs()
	// is used when nil.
	Codecs compress.Registry

	// InitialFetchSize is how many trailing bytes to speculatively fetch
	// from the ByteSource before the footer's metadata length is known.
	// DefaultInitialFetchSize is used when zero (see ReadMetadataAsync).
	InitialFetchSize int64
}

// Option configures a ReadConfig.
type Option func(*ReadConfig)

// WithColumns restricts a read to the named dot-joined schema paths.
func WithColumns(paths ...string) Option {
	return func(c *ReadConfig) { c.Columns = paths }
}

// WithRowRange bounds a read to the half-open row range [start, end).
func WithRowRange(start, end int64) Option {
	return func(c *ReadConfig) { c.RowStart, c.RowEnd = start, end }
}

// WithCodecs overrides the codec table used to decompress page bodies.
func WithCodecs(codecs compress.Registry) Option {
	return func(c *ReadConfig) { c.Codecs = codecs }
}

// WithInitialFetchSize overrides how many trailing bytes are fetched before
// the footer's metadata length is known.
func WithInitialFetchSize(n int64) Option {
	return func(c *ReadConfig) { c.InitialFetchSize = n }
}

// NewReadConfig builds a ReadConfig from options, filling in defaults.
func NewReadConfig(opts ...Option) *ReadConfig {
	c := &ReadConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.Codecs == nil {
		c.Codecs = DefaultCodecs()
	}
	return c
}

func (c *ReadConfig) rowEnd(totalRows int64) int64 {
	if c.RowEnd <= 0 || c.RowEnd > totalRows {
		return totalRows
	}
	return c.RowEnd
}

func (c *ReadConfig) validate() error {
	if c.RowStart < 0 {
		return fmt.Errorf("parquet: row_start %d is negative", c.RowStart)
	}
	if c.RowEnd != 0 && c.RowEnd < c.RowStart {
		return fmt.Errorf("parquet: row_end %d precedes row_start %d", c.RowEnd, c.RowStart)
	}
	return nil
}
