// Package snappy implements the SNAPPY parquet compression codec.
//
// Parquet's SNAPPY pages are raw snappy blocks, not the framed stream
// format klauspost/compress/snappy's Reader/Writer speak, so decoding goes
// straight through snappy.Decode rather than compress.Decompressor.
package snappy

import (
	"github.com/klauspost/compress/snappy"

	"github.com/goparquet/goparquet/format"
)

type Codec struct{}

func (c *Codec) String() string { return "SNAPPY" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Snappy
}

func (c *Codec) Decode(dst, src []byte, size int) ([]byte, error) {
	if size > 0 && cap(dst) < size {
		dst = make([]byte, size)
	}
	return snappy.Decode(dst[:0], src)
}
