// Package zstd implements the ZSTD parquet compression codec.
package zstd

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/goparquet/goparquet/compress"
	"github.com/goparquet/goparquet/format"
)

type Codec struct {
	decompressor compress.Decompressor
}

func (c *Codec) String() string { return "ZSTD" }

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Zstd
}

func (c *Codec) Decode(dst, src []byte, size int) ([]byte, error) {
	return c.decompressor.Decode(dst, src, size, func(r io.Reader) (compress.Reader, error) {
		z, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return reader{z}, nil
	})
}

type reader struct{ *zstd.Decoder }

func (r reader) Close() error { r.Decoder.Close(); return nil }
