package varint_test

import (
	"bytes"
	"testing"

	"github.com/goparquet/goparquet/internal/varint"
)

func TestReadUvarint(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"300", []byte{0xAC, 0x02}, 300},
		{"150", []byte{0x96, 0x01}, 150},
		{"zero", []byte{0x00}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := varint.ReadUvarint(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadUvarint(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ReadUvarint(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadVarintZigZag(t *testing.T) {
	got, err := varint.ReadVarint(bytes.NewReader([]byte{0x03}))
	if err != nil {
		t.Fatalf("ReadVarint: %v", err)
	}
	if got != -2 {
		t.Fatalf("ReadVarint(0x03) = %d, want -2", got)
	}
}

func TestAppendUvarintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 150, 300, 1 << 40} {
		buf := varint.AppendUvarint(nil, v)
		got, err := varint.ReadUvarint(bytes.NewReader(buf))
		if err != nil {
			t.Fatalf("round trip %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d: got %d", v, got)
		}
	}
}

func TestAppendVarintRoundTrip(t *testing.T) {
	for _, n := range []int64{0, -1, 1, -2, 1000, -1000} {
		buf := varint.AppendVarint(nil, n)
		got, err := varint.ReadVarint(bytes.NewReader(buf))
		if err != nil {
			t.Fatalf("round trip %d: %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip %d: got %d", n, got)
		}
	}
}
