// Package plain implements the PLAIN encoding: fixed-width types are
// read little-endian back to back; BOOLEAN packs one bit per value,
// LSB-first; BYTE_ARRAY is length-prefixed; FIXED_LEN_BYTE_ARRAY reads a
// fixed run per value; INT96 is the legacy 12-byte representation.
package plain

import (
	"github.com/goparquet/goparquet/internal/bitpack"
	"github.com/goparquet/goparquet/internal/perr"
)

// DecodeBoolean unpacks count bits, LSB-first within each byte.
func DecodeBoolean(data []byte, count int) ([]bool, error) {
	need := (count + 7) / 8
	if len(data) < need {
		return nil, perr.New(perr.TruncatedInput, "PLAIN boolean: need %d bytes, have %d", need, len(data))
	}
	out := make([]bool, count)
	for i := 0; i < count; i++ {
		out[i] = data[i/8]&(1<<uint(i%8)) != 0
	}
	return out, nil
}

// DecodeInt32 reads count little-endian signed 32-bit integers.
func DecodeInt32(data []byte, count int) ([]int32, error) {
	c := bitpack.NewCursor(data)
	out := make([]int32, count)
	for i := range out {
		v, err := c.ReadInt32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// DecodeInt64 reads count little-endian signed 64-bit integers.
func DecodeInt64(data []byte, count int) ([]int64, error) {
	c := bitpack.NewCursor(data)
	out := make([]int64, count)
	for i := range out {
		v, err := c.ReadInt64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Int96 is the 12-byte legacy physical representation: low 64 bits then
// high 32 bits, combined as (high<<64)|low.
type Int96 struct {
	Low  uint64
	High uint32
}

// DecodeInt96 reads count 12-byte INT96 values.
func DecodeInt96(data []byte, count int) ([]Int96, error) {
	c := bitpack.NewCursor(data)
	out := make([]Int96, count)
	for i := range out {
		lo, hi, err := c.ReadInt96()
		if err != nil {
			return nil, err
		}
		out[i] = Int96{Low: lo, High: hi}
	}
	return out, nil
}

// DecodeFloat32 reads count IEEE-754 little-endian 32-bit floats.
func DecodeFloat32(data []byte, count int) ([]float32, error) {
	c := bitpack.NewCursor(data)
	out := make([]float32, count)
	for i := range out {
		v, err := c.ReadFloat32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// DecodeFloat64 reads count IEEE-754 little-endian 64-bit floats.
func DecodeFloat64(data []byte, count int) ([]float64, error) {
	c := bitpack.NewCursor(data)
	out := make([]float64, count)
	for i := range out {
		v, err := c.ReadFloat64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// DecodeByteArray reads count length-prefixed variable-width values,
// returning zero-copy sub-slices of data rather than copies.
func DecodeByteArray(data []byte, count int) ([][]byte, error) {
	c := bitpack.NewCursor(data)
	out := make([][]byte, count)
	for i := range out {
		n, err := c.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, perr.New(perr.TruncatedInput, "PLAIN byte array: negative length %d", n)
		}
		b, err := c.ReadFixed(int(n))
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// DecodeFixedLenByteArray reads count runs of exactly length bytes each,
// returning zero-copy sub-slices of data.
func DecodeFixedLenByteArray(data []byte, count, length int) ([][]byte, error) {
	c := bitpack.NewCursor(data)
	out := make([][]byte, count)
	for i := range out {
		b, err := c.ReadFixed(length)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
