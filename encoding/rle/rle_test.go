package rle_test

import (
	"reflect"
	"testing"

	"github.com/goparquet/goparquet/encoding/rle"
)

// A bit-packed run of one group (8 values) at bitWidth 3 needs 3 bytes of
// packed data (24 bits); only the first byte holds a nonzero value, so the
// remaining two are zero padding for the unused upper values.
func TestDecodeHybridBitPackedRun(t *testing.T) {
	data := []byte{0x03, 0x05, 0x00, 0x00}
	got, n, err := rle.DecodeHybrid(data, 3, 8)
	if err != nil {
		t.Fatalf("DecodeHybrid: %v", err)
	}
	want := []uint64{5, 0, 0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeHybrid = %v, want %v", got, want)
	}
	if n != len(data) {
		t.Fatalf("consumed %d bytes, want %d", n, len(data))
	}
}

func TestDecodeHybridRLERun(t *testing.T) {
	// header = 4<<1 = 8 (RLE run of 4 values), bitWidth 8 so the value is
	// a single byte: 0x2A repeated 4 times.
	data := []byte{0x08, 0x2A}
	got, _, err := rle.DecodeHybrid(data, 8, 4)
	if err != nil {
		t.Fatalf("DecodeHybrid: %v", err)
	}
	want := []uint64{0x2A, 0x2A, 0x2A, 0x2A}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeHybrid = %v, want %v", got, want)
	}
}

func TestDecodeHybridZeroBitWidth(t *testing.T) {
	got, n, err := rle.DecodeHybrid(nil, 0, 5)
	if err != nil {
		t.Fatalf("DecodeHybrid: %v", err)
	}
	want := []uint64{0, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeHybrid = %v, want %v", got, want)
	}
	if n != 0 {
		t.Fatalf("consumed %d bytes, want 0", n)
	}
}

func TestDecodeLengthPrefixed(t *testing.T) {
	// RLE run of 4 values (header=8), value 0x2A, length-prefixed.
	payload := []byte{0x08, 0x2A}
	data := append([]byte{byte(len(payload)), 0x00, 0x00, 0x00}, payload...)
	got, n, err := rle.DecodeLengthPrefixed(data, 8, 4)
	if err != nil {
		t.Fatalf("DecodeLengthPrefixed: %v", err)
	}
	want := []uint64{0x2A, 0x2A, 0x2A, 0x2A}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeLengthPrefixed = %v, want %v", got, want)
	}
	if n != 4+len(payload) {
		t.Fatalf("consumed %d bytes, want %d", n, 4+len(payload))
	}
}

func TestDecodeDictionaryIndices(t *testing.T) {
	// bit width byte (3), then a bit-packed run of 1 group (8 values).
	data := []byte{0x03, 0x03, 0x05, 0x00, 0x00}
	got, err := rle.DecodeDictionaryIndices(data, 8)
	if err != nil {
		t.Fatalf("DecodeDictionaryIndices: %v", err)
	}
	want := []uint64{5, 0, 0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeDictionaryIndices = %v, want %v", got, want)
	}
}
