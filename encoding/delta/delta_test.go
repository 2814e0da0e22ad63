package delta_test

import (
	"reflect"
	"testing"

	"github.com/goparquet/goparquet/encoding/delta"
	"github.com/goparquet/goparquet/internal/varint"
)

// buildConstantDeltaStream hand-assembles a DELTA_BINARY_PACKED stream for
// a sequence that increases by exactly 1 each step, so every miniblock's
// adjusted deltas are 0 and needs a 0-bit width (no packed bytes at all).
func buildConstantDeltaStream(blockSize, miniblocksPerBlock, totalValueCount uint64, firstValue int64) []byte {
	buf := varint.AppendUvarint(nil, blockSize)
	buf = varint.AppendUvarint(buf, miniblocksPerBlock)
	buf = varint.AppendUvarint(buf, totalValueCount)
	buf = varint.AppendVarint(buf, firstValue)

	// One block: minDelta = 1 (the constant step), then a 0-bit width per
	// miniblock, no packed bytes following.
	buf = varint.AppendVarint(buf, 1)
	for i := uint64(0); i < miniblocksPerBlock; i++ {
		buf = append(buf, 0)
	}
	return buf
}

func TestDecodeConstantDeltaRoundTrip(t *testing.T) {
	data := buildConstantDeltaStream(128, 4, 10, 1)
	got, n, err := delta.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode = %v, want %v", got, want)
	}
	if n != len(data) {
		t.Fatalf("consumed %d bytes, want %d", n, len(data))
	}
}

func TestDecodeInt32(t *testing.T) {
	data := buildConstantDeltaStream(128, 4, 5, 100)
	got, _, err := delta.DecodeInt32(data)
	if err != nil {
		t.Fatalf("DecodeInt32: %v", err)
	}
	want := []int32{100, 101, 102, 103, 104}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeInt32 = %v, want %v", got, want)
	}
}

func TestDecodeEmpty(t *testing.T) {
	buf := varint.AppendUvarint(nil, 128)
	buf = varint.AppendUvarint(buf, 4)
	buf = varint.AppendUvarint(buf, 0)
	buf = varint.AppendVarint(buf, 0)

	got, n, err := delta.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Decode = %v, want empty", got)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d bytes, want %d", n, len(buf))
	}
}
