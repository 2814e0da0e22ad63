// Package bitpack implements the stateful byte cursor and the bit-packed
// integer reader shared by the
// Thrift Compact decoder and the RLE/bit-packed hybrid decoder.
package bitpack

import (
	"encoding/binary"
	"math"

	"github.com/goparquet/goparquet/internal/perr"
)

// Cursor is a mutable byte offset over an in-memory slice. Every read
// bounds-checks against the slice and returns perr.TruncatedInput on
// underflow.
type Cursor struct {
	Data []byte
	Pos  int
}

// NewCursor wraps data in a Cursor starting at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{Data: data}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int { return len(c.Data) - c.Pos }

// Remaining returns the unread suffix of the underlying slice without
// advancing the cursor.
func (c *Cursor) Remaining() []byte { return c.Data[c.Pos:] }

func (c *Cursor) require(n int) error {
	if n < 0 || c.Pos+n > len(c.Data) {
		return perr.New(perr.TruncatedInput, "need %d bytes, have %d at offset %d", n, len(c.Data)-c.Pos, c.Pos)
	}
	return nil
}

// ReadByte reads a single unsigned byte and advances the cursor.
func (c *Cursor) ReadByte() (byte, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	b := c.Data[c.Pos]
	c.Pos++
	return b, nil
}

// PeekByte returns the next byte without advancing the cursor.
func (c *Cursor) PeekByte() (byte, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	return c.Data[c.Pos], nil
}

// Skip advances the cursor by n bytes, bounds-checked.
func (c *Cursor) Skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.Pos += n
	return nil
}

// ReadFixed returns a zero-copy sub-slice of the next n bytes.
func (c *Cursor) ReadFixed(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := c.Data[c.Pos : c.Pos+n]
	c.Pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadUint8() (uint8, error) { return c.ReadByte() }

// ReadInt8 reads a signed 8-bit integer.
func (c *Cursor) ReadInt8() (int8, error) {
	b, err := c.ReadByte()
	return int8(b), err
}

// ReadUint16 reads a little-endian unsigned 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt16 reads a little-endian signed 16-bit integer.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a little-endian unsigned 64-bit integer.
func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64 reads a little-endian signed 64-bit integer.
func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads an IEEE-754 little-endian 32-bit float.
func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE-754 little-endian 64-bit float.
func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadInt96 reads the 12-byte INT96 physical representation (low 64 bits
// then high 32 bits) and returns its two halves, (low uint64, high uint32),
// which together stand for `(high << 64) | low`, since Go has no native
// 96/128-bit integer type.
func (c *Cursor) ReadInt96() (lo uint64, hi uint32, err error) {
	b, err := c.ReadFixed(12)
	if err != nil {
		return 0, 0, err
	}
	lo = binary.LittleEndian.Uint64(b[:8])
	hi = binary.LittleEndian.Uint32(b[8:])
	return lo, hi, nil
}
