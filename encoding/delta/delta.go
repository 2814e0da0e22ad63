// Package delta implements the DELTA_BINARY_PACKED encoding, used for
// INT32 and INT64 columns.
package delta

import (
	"github.com/goparquet/goparquet/internal/bitpack"
	"github.com/goparquet/goparquet/internal/perr"
	"github.com/goparquet/goparquet/internal/varint"
)

// Decode reads one DELTA_BINARY_PACKED stream from the front of data,
// returning every reconstructed value and the number of bytes consumed.
//
// Layout: blockSize (varint), miniblocksPerBlock (varint),
// totalValueCount (varint), firstValue (zigzag varint); then, per block, a
// zigzag minDelta, one bit-width byte per miniblock, then each miniblock's
// blockSize/miniblocksPerBlock packed deltas at that width. Trailing
// miniblocks beyond totalValueCount are present (padded) and are
// byte-skipped rather than decoded into output values.
func Decode(data []byte) ([]int64, int, error) {
	c := bitpack.NewCursor(data)

	blockSize, err := varint.ReadUvarint(c)
	if err != nil {
		return nil, 0, perr.Wrap(perr.ThriftDecode, err, "delta: reading block size")
	}
	miniblocksPerBlock, err := varint.ReadUvarint(c)
	if err != nil {
		return nil, 0, perr.Wrap(perr.ThriftDecode, err, "delta: reading miniblocks per block")
	}
	totalValueCount, err := varint.ReadUvarint(c)
	if err != nil {
		return nil, 0, perr.Wrap(perr.ThriftDecode, err, "delta: reading total value count")
	}
	firstValue, err := varint.ReadVarint(c)
	if err != nil {
		return nil, 0, perr.Wrap(perr.ThriftDecode, err, "delta: reading first value")
	}

	if miniblocksPerBlock == 0 || blockSize%miniblocksPerBlock != 0 {
		return nil, 0, perr.New(perr.ThriftDecode, "delta: block size %d not divisible by %d miniblocks", blockSize, miniblocksPerBlock)
	}
	valuesPerMiniblock := int(blockSize / miniblocksPerBlock)

	out := make([]int64, 0, totalValueCount)
	if totalValueCount == 0 {
		return out, c.Pos, nil
	}
	out = append(out, firstValue)
	value := firstValue

	for uint64(len(out)) < totalValueCount {
		minDelta, err := varint.ReadVarint(c)
		if err != nil {
			return nil, c.Pos, perr.Wrap(perr.ThriftDecode, err, "delta: reading block min delta")
		}

		widths := make([]int, miniblocksPerBlock)
		for i := range widths {
			b, err := c.ReadByte()
			if err != nil {
				return nil, c.Pos, perr.Wrap(perr.ThriftDecode, err, "delta: reading miniblock bit width")
			}
			widths[i] = int(b)
		}

		for mb := 0; mb < int(miniblocksPerBlock); mb++ {
			packedBytes := (valuesPerMiniblock*widths[mb] + 7) / 8
			chunk, err := c.ReadFixed(packedBytes)
			if err != nil {
				return nil, c.Pos, perr.Wrap(perr.TruncatedInput, err, "delta: reading miniblock data")
			}
			if uint64(len(out)) >= totalValueCount {
				// Trailing miniblock entirely past the declared count:
				// still consumed above, never decoded.
				continue
			}
			r := bitpack.NewReader(chunk, uint(widths[mb]))
			for i := 0; i < valuesPerMiniblock && uint64(len(out)) < totalValueCount; i++ {
				d, err := r.Next()
				if err != nil {
					return nil, c.Pos, err
				}
				value += minDelta + int64(d)
				out = append(out, value)
			}
		}
	}

	return out, c.Pos, nil
}

// DecodeInt32 decodes a DELTA_BINARY_PACKED stream of INT32 values.
func DecodeInt32(data []byte) ([]int32, int, error) {
	values, n, err := Decode(data)
	if err != nil {
		return nil, n, err
	}
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out, n, nil
}

// DecodeInt64 decodes a DELTA_BINARY_PACKED stream of INT64 values.
func DecodeInt64(data []byte) ([]int64, int, error) {
	return Decode(data)
}
