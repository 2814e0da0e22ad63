package plain_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/goparquet/goparquet/encoding/plain"
)

func TestDecodeBoolean(t *testing.T) {
	// 0b00010110 LSB-first: values 0,1,1,0,1,0,0,0
	got, err := plain.DecodeBoolean([]byte{0x16}, 8)
	if err != nil {
		t.Fatalf("DecodeBoolean: %v", err)
	}
	want := []bool{false, true, true, false, true, false, false, false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeBoolean = %v, want %v", got, want)
	}
}

func TestDecodeInt32(t *testing.T) {
	data := []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	got, err := plain.DecodeInt32(data, 2)
	if err != nil {
		t.Fatalf("DecodeInt32: %v", err)
	}
	want := []int32{1, -1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeInt32 = %v, want %v", got, want)
	}
}

func TestDecodeByteArray(t *testing.T) {
	// length 3 "foo", length 2 "hi"
	data := []byte{3, 0, 0, 0, 'f', 'o', 'o', 2, 0, 0, 0, 'h', 'i'}
	got, err := plain.DecodeByteArray(data, 2)
	if err != nil {
		t.Fatalf("DecodeByteArray: %v", err)
	}
	want := [][]byte{[]byte("foo"), []byte("hi")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeByteArray = %v, want %v", got, want)
	}
}

func TestDecodeByteArrayNegativeLength(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if _, err := plain.DecodeByteArray(data, 1); err == nil {
		t.Fatal("DecodeByteArray: expected error for negative length, got nil")
	}
}

func TestDecodeFixedLenByteArray(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	got, err := plain.DecodeFixedLenByteArray(data, 2, 3)
	if err != nil {
		t.Fatalf("DecodeFixedLenByteArray: %v", err)
	}
	want := [][]byte{{1, 2, 3}, {4, 5, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeFixedLenByteArray = %v, want %v", got, want)
	}
}

func TestDecodeFloat64(t *testing.T) {
	buf := make([]byte, 8)
	bits := math.Float64bits(3.5)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * uint(i)))
	}
	got, err := plain.DecodeFloat64(buf, 1)
	if err != nil {
		t.Fatalf("DecodeFloat64: %v", err)
	}
	if got[0] != 3.5 {
		t.Fatalf("DecodeFloat64 = %v, want [3.5]", got)
	}
}

func TestDecodeInt96(t *testing.T) {
	data := make([]byte, 12)
	data[0] = 0x01 // low = 1
	data[8] = 0x02 // high = 2
	got, err := plain.DecodeInt96(data, 1)
	if err != nil {
		t.Fatalf("DecodeInt96: %v", err)
	}
	want := plain.Int96{Low: 1, High: 2}
	if got[0] != want {
		t.Fatalf("DecodeInt96 = %+v, want %+v", got[0], want)
	}
}

func TestDecodeTruncated(t *testing.T) {
	if _, err := plain.DecodeInt32([]byte{0x01, 0x00}, 1); err == nil {
		t.Fatal("DecodeInt32: expected truncation error, got nil")
	}
}
