package thrift_test

import (
	"testing"

	"github.com/goparquet/goparquet/internal/thrift"
)

func TestStructSingleI32Field(t *testing.T) {
	// field id 1 (delta=1), type I32 (5): header byte 0x15; value zigzag(16)=32 -> 0x20; STOP.
	data := []byte{0x15, 0x20, 0x00}
	fields, n, err := thrift.Struct(data)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if n != len(data) {
		t.Fatalf("consumed %d bytes, want %d", n, len(data))
	}
	v, ok := fields["field_1"]
	if !ok {
		t.Fatal("field_1 missing")
	}
	if v.Int != 16 {
		t.Fatalf("field_1.Int = %d, want 16", v.Int)
	}
}

func TestStructBooleanFields(t *testing.T) {
	// field 1 = true (type 1), field 2 = false (type 2, delta 1), STOP.
	data := []byte{0x11, 0x12, 0x00}
	fields, _, err := thrift.Struct(data)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if !fields["field_1"].Bool {
		t.Fatal("field_1 should be true")
	}
	if fields["field_2"].Bool {
		t.Fatal("field_2 should be false")
	}
}

func TestStructList(t *testing.T) {
	// field 1 (delta=1), type LIST (9): header 0x19.
	// list header: 3 elements of type I32 (5): (3<<4)|5 = 0x35.
	// three zigzag varints: 1,2,3 -> 2,4,6.
	// STOP.
	data := []byte{0x19, 0x35, 0x02, 0x04, 0x06, 0x00}
	fields, _, err := thrift.Struct(data)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	list := fields["field_1"].List
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	for i, want := range []int64{1, 2, 3} {
		if list[i].Int != want {
			t.Fatalf("list[%d].Int = %d, want %d", i, list[i].Int, want)
		}
	}
}

func TestStructNested(t *testing.T) {
	// field 1 (delta=1), type STRUCT (12): header 0x1c.
	// inner struct: field 1 (delta=1), type I32 (5): header 0x15, value zigzag(7)=14 -> 0x0e, STOP.
	// outer STOP.
	data := []byte{0x1c, 0x15, 0x0e, 0x00, 0x00}
	fields, n, err := thrift.Struct(data)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if n != len(data) {
		t.Fatalf("consumed %d bytes, want %d", n, len(data))
	}
	inner := fields["field_1"].Struct
	if inner["field_1"].Int != 7 {
		t.Fatalf("inner field_1.Int = %d, want 7", inner["field_1"].Int)
	}
}

func TestStructUnknownWireType(t *testing.T) {
	// type nibble 14 is unassigned.
	data := []byte{0x1e}
	if _, _, err := thrift.Struct(data); err == nil {
		t.Fatal("Struct: expected error for unknown wire type, got nil")
	}
}
