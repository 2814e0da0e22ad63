// Package rle implements the RLE/BIT_PACKED hybrid encoding used for
// repetition and definition levels, and for dictionary indices in
// RLE_DICTIONARY / PLAIN_DICTIONARY data pages.
package rle

import (
	"encoding/binary"

	"github.com/goparquet/goparquet/internal/bitpack"
	"github.com/goparquet/goparquet/internal/perr"
	"github.com/goparquet/goparquet/internal/varint"
)

// DecodeHybrid reads RLE/bit-packed runs from the front of data until
// either count values have been produced or data is exhausted, returning
// the decoded values (trimmed to at most count) and the number of input
// bytes consumed.
//
// A bitWidth of 0 is legal and produces count zero values, consuming no
// bytes.
func DecodeHybrid(data []byte, bitWidth, count int) ([]uint64, int, error) {
	if bitWidth == 0 {
		return make([]uint64, count), 0, nil
	}

	c := bitpack.NewCursor(data)
	out := make([]uint64, 0, count)

	for len(out) < count && c.Len() > 0 {
		header, err := varint.ReadUvarint(c)
		if err != nil {
			return nil, c.Pos, perr.Wrap(perr.ThriftDecode, err, "reading RLE/bit-packed run header")
		}

		if header&1 == 0 {
			// RLE run: header>>1 repeats of one little-endian value
			// occupying ceil(bitWidth/8) bytes.
			runLen := int(header >> 1)
			width := byteWidth(bitWidth)
			var v uint64
			if width > 0 {
				b, err := c.ReadFixed(width)
				if err != nil {
					return nil, c.Pos, err
				}
				v = readLittleEndian(b)
			}
			for i := 0; i < runLen; i++ {
				out = append(out, v)
			}
		} else {
			// Bit-packed run: (header>>1)*8 values, bitWidth bits each,
			// LSB-first, possibly crossing byte boundaries.
			groups := int(header >> 1)
			n := groups * 8
			packedBytes := (n*bitWidth + 7) / 8
			chunk, err := c.ReadFixed(packedBytes)
			if err != nil {
				return nil, c.Pos, err
			}
			r := bitpack.NewReader(chunk, uint(bitWidth))
			for i := 0; i < n; i++ {
				v, err := r.Next()
				if err != nil {
					return nil, c.Pos, err
				}
				out = append(out, v)
			}
		}
	}

	if len(out) > count {
		out = out[:count]
	}
	return out, c.Pos, nil
}

// DecodeLengthPrefixed reads a little-endian int32 length prefix followed
// by a hybrid stream of exactly that many bytes, as used by DATA_PAGE (V1)
// levels. It returns the decoded values (up to count) and always reports
// 4+length consumed: the stream consumes exactly the declared byte length
// regardless of how many values that implies.
func DecodeLengthPrefixed(data []byte, bitWidth, count int) ([]uint64, int, error) {
	if len(data) < 4 {
		return nil, 0, perr.New(perr.TruncatedInput, "RLE length prefix: need 4 bytes, have %d", len(data))
	}
	length := int(int32(binary.LittleEndian.Uint32(data)))
	if length < 0 || 4+length > len(data) {
		return nil, 0, perr.New(perr.TruncatedInput, "RLE length prefix %d exceeds available %d bytes", length, len(data)-4)
	}
	values, _, err := DecodeHybrid(data[4:4+length], bitWidth, count)
	if err != nil {
		return nil, 0, err
	}
	return values, 4 + length, nil
}

// DecodeDictionaryIndices reads a one-byte bit width followed by a hybrid
// stream running to the end of data: RLE/*_DICTIONARY pages read a
// 1-byte bit width then an RLE/bit-packed hybrid stream without a length
// prefix, consuming all remaining bytes.
func DecodeDictionaryIndices(data []byte, count int) ([]uint64, error) {
	if len(data) < 1 {
		return nil, perr.New(perr.TruncatedInput, "dictionary index stream missing bit-width byte")
	}
	bitWidth := int(data[0])
	values, _, err := DecodeHybrid(data[1:], bitWidth, count)
	return values, err
}

// byteWidth maps an RLE bit width to the number of bytes an RLE-run value
// occupies: 0 -> 0, 1-8 -> 1, 9-16 -> 2, 17-32 -> 4.
func byteWidth(bitWidth int) int {
	switch {
	case bitWidth == 0:
		return 0
	case bitWidth <= 8:
		return 1
	case bitWidth <= 16:
		return 2
	default:
		return 4
	}
}

func readLittleEndian(b []byte) uint64 {
	var v uint64
	for i, c := range b {
		v |= uint64(c) << (8 * uint(i))
	}
	return v
}
