package uncompressed_test

import (
	"bytes"
	"testing"

	"github.com/goparquet/goparquet/compress/uncompressed"
	"github.com/goparquet/goparquet/format"
)

func TestDecode(t *testing.T) {
	c := &uncompressed.Codec{}
	if c.CompressionCodec() != format.Uncompressed {
		t.Fatalf("CompressionCodec() = %v, want UNCOMPRESSED", c.CompressionCodec())
	}
	want := []byte("raw bytes, unchanged")
	got, err := c.Decode(nil, want, len(want))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Decode = %q, want %q", got, want)
	}
}
