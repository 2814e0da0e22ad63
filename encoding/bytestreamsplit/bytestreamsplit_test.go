package bytestreamsplit_test

import (
	"math"
	"testing"

	"github.com/goparquet/goparquet/encoding/bytestreamsplit"
)

// splitFloat32 builds a BYTE_STREAM_SPLIT-encoded buffer for values,
// mirroring the layout DecodeFloat32 expects: stream b holds byte b of
// every value, in order.
func splitFloat32(values []float32) []byte {
	count := len(values)
	out := make([]byte, count*4)
	for i, v := range values {
		bits := math.Float32bits(v)
		for b := 0; b < 4; b++ {
			out[b*count+i] = byte(bits >> (8 * uint(b)))
		}
	}
	return out
}

func splitFloat64(values []float64) []byte {
	count := len(values)
	out := make([]byte, count*8)
	for i, v := range values {
		bits := math.Float64bits(v)
		for b := 0; b < 8; b++ {
			out[b*count+i] = byte(bits >> (8 * uint(b)))
		}
	}
	return out
}

func TestDecodeFloat32(t *testing.T) {
	want := []float32{1.5, -2.25, 0, 3.125}
	data := splitFloat32(want)
	got, err := bytestreamsplit.DecodeFloat32(data, len(want))
	if err != nil {
		t.Fatalf("DecodeFloat32: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DecodeFloat32[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeFloat64(t *testing.T) {
	want := []float64{1.5, -2.25, 0, 3.125}
	data := splitFloat64(want)
	got, err := bytestreamsplit.DecodeFloat64(data, len(want))
	if err != nil {
		t.Fatalf("DecodeFloat64: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DecodeFloat64[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeFloat32Truncated(t *testing.T) {
	if _, err := bytestreamsplit.DecodeFloat32([]byte{1, 2, 3}, 1); err == nil {
		t.Fatal("DecodeFloat32: expected truncation error, got nil")
	}
}
