package gzip_test

import (
	"bytes"
	stdgzip "compress/gzip"
	"testing"

	"github.com/goparquet/goparquet/compress/gzip"
	"github.com/goparquet/goparquet/format"
)

func TestDecode(t *testing.T) {
	want := []byte("the quick brown fox jumps over the lazy dog")

	var buf bytes.Buffer
	w := stdgzip.NewWriter(&buf)
	if _, err := w.Write(want); err != nil {
		t.Fatalf("gzip.Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip.Close: %v", err)
	}

	c := &gzip.Codec{}
	if c.CompressionCodec() != format.Gzip {
		t.Fatalf("CompressionCodec() = %v, want GZIP", c.CompressionCodec())
	}

	got, err := c.Decode(nil, buf.Bytes(), len(want))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Decode = %q, want %q", got, want)
	}
}

func TestDecodeReusesPooledReader(t *testing.T) {
	c := &gzip.Codec{}
	for i := 0; i < 3; i++ {
		want := []byte("round trip")
		var buf bytes.Buffer
		w := stdgzip.NewWriter(&buf)
		w.Write(want)
		w.Close()

		got, err := c.Decode(nil, buf.Bytes(), len(want))
		if err != nil {
			t.Fatalf("Decode iteration %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Decode iteration %d = %q, want %q", i, got, want)
		}
	}
}
