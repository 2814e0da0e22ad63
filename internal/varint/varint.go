// Package varint implements the unsigned LEB128 varints and zigzag-encoded
// signed varints used by the Thrift Compact Protocol and by
// DELTA_BINARY_PACKED.
package varint

import "github.com/goparquet/goparquet/internal/perr"

// MaxBytes64 is the longest a 64-bit unsigned varint may legally be: 10
// groups of 7 bits cover 70 bits, more than enough for 64, and any input
// still setting the continuation bit past that point is malformed.
const MaxBytes64 = 10

// ByteReader is the minimal interface varint decoding needs: a single byte
// at a time, so it composes with both bitpack.Cursor and bytes.Reader.
type ByteReader interface {
	ReadByte() (byte, error)
}

// ReadUvarint decodes an unsigned LEB128 varint, 1 to 10 bytes.
func ReadUvarint(r ByteReader) (uint64, error) {
	var x uint64
	var shift uint
	for i := 0; ; i++ {
		if i >= MaxBytes64 {
			return 0, perr.New(perr.ThriftDecode, "varint exceeds %d bytes", MaxBytes64)
		}
		b, err := r.ReadByte()
		if err != nil {
			return 0, perr.Wrap(perr.TruncatedInput, err, "reading varint byte %d", i)
		}
		x |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return x, nil
		}
		shift += 7
	}
}

// ReadVarint decodes a zigzag-encoded signed 64-bit varint:
// decode(n) = (n >> 1) ^ -(n & 1).
func ReadVarint(r ByteReader) (int64, error) {
	u, err := ReadUvarint(r)
	if err != nil {
		return 0, err
	}
	return DecodeZigZag64(u), nil
}

// DecodeZigZag64 undoes the zigzag mapping of a 64-bit signed integer.
func DecodeZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// EncodeZigZag64 maps a 64-bit signed integer into the zigzag unsigned
// space, used by the DELTA_BINARY_PACKED round-trip test helpers.
func EncodeZigZag64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// AppendUvarint appends the unsigned LEB128 encoding of v to dst.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AppendVarint appends the zigzag varint encoding of a signed integer to
// dst.
func AppendVarint(dst []byte, n int64) []byte {
	return AppendUvarint(dst, EncodeZigZag64(n))
}
