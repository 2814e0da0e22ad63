// Package bytestreamsplit implements the BYTE_STREAM_SPLIT encoding,
// used for FLOAT and DOUBLE columns. Each value's bytes are de-interleaved
// across one stream per byte of the value width, each stream count bytes
// long (stream i holds byte i of every value),
// which tends to compress better than the native little-endian layout
// because each stream groups bytes of similar statistical distribution.
package bytestreamsplit

import (
	"math"

	"github.com/goparquet/goparquet/internal/perr"
)

// DecodeFloat32 de-interleaves 4 streams of count bytes each back into
// count IEEE-754 32-bit floats.
func DecodeFloat32(data []byte, count int) ([]float32, error) {
	const width = 4
	if len(data) < count*width {
		return nil, perr.New(perr.TruncatedInput, "BYTE_STREAM_SPLIT float32: need %d bytes, have %d", count*width, len(data))
	}
	out := make([]float32, count)
	for i := range out {
		var bits uint32
		for b := 0; b < width; b++ {
			bits |= uint32(data[b*count+i]) << (8 * uint(b))
		}
		out[i] = math.Float32frombits(bits)
	}
	return out, nil
}

// DecodeFloat64 de-interleaves 8 streams of count bytes each back into
// count IEEE-754 64-bit floats.
func DecodeFloat64(data []byte, count int) ([]float64, error) {
	const width = 8
	if len(data) < count*width {
		return nil, perr.New(perr.TruncatedInput, "BYTE_STREAM_SPLIT float64: need %d bytes, have %d", count*width, len(data))
	}
	out := make([]float64, count)
	for i := range out {
		var bits uint64
		for b := 0; b < width; b++ {
			bits |= uint64(data[b*count+i]) << (8 * uint(b))
		}
		out[i] = math.Float64frombits(bits)
	}
	return out, nil
}
