// Package compress provides the decode side of the parquet compression
// codecs: a mapping from CompressionCodec to a function from
// (input bytes, expected output length) to output bytes. This reader never
// writes Parquet files, this package's Codec has no Encode/Writer half.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/goparquet/goparquet/format"
)

// Codec decompresses the page bodies of one CompressionCodec.
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// String returns a human-readable name for the codec.
	String() string

	// CompressionCodec returns the code of the compression codec in the
	// parquet format.
	CompressionCodec() format.CompressionCodec

	// Decode writes the uncompressed version of src to dst and returns it,
	// reallocating dst if its capacity is too small to hold size bytes.
	Decode(dst, src []byte, size int) ([]byte, error)
}

// Reader is the subset of a streaming decompressor's API this package
// needs: read the decompressed bytes, and be reset onto a new source so
// the underlying decoder can be pooled across Decode calls.
type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

// Decompressor pools Readers across Decode calls, avoiding a fresh decoder
// allocation (and, for zstd in particular, a fresh dictionary table) on
// every page.
type Decompressor struct {
	readers sync.Pool
}

// Decode reads all of newReader(src)'s output into dst, growing dst as
// needed, and returns the result.
func (d *Decompressor) Decode(dst, src []byte, size int, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	if size > 0 {
		output.Grow(size)
	}
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}

// Registry resolves a CompressionCodec to the Codec implementing it.
type Registry map[format.CompressionCodec]Codec

// Get returns the Codec registered for code, if any.
func (r Registry) Get(code format.CompressionCodec) (Codec, bool) {
	c, ok := r[code]
	return c, ok
}
