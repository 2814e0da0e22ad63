// Package uncompressed implements the UNCOMPRESSED parquet codec: a no-op
// pass-through.
package uncompressed

import (
	"github.com/goparquet/goparquet/format"
)

type Codec struct{}

func (c *Codec) String() string { return "UNCOMPRESSED" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Uncompressed
}

func (c *Codec) Decode(dst, src []byte, size int) ([]byte, error) {
	return append(dst[:0], src...), nil
}
