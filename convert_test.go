package parquet

import (
	"testing"
	"time"

	"github.com/goparquet/goparquet/format"
)

func dateElement() *format.SchemaElement {
	ct := format.Date
	return &format.SchemaElement{Name: "d", ConvertedType: &ct}
}

func TestConvertValueDate(t *testing.T) {
	got, err := ConvertValue(int32(1), dateElement())
	if err != nil {
		t.Fatalf("ConvertValue: %v", err)
	}
	want := time.Date(1970, time.January, 2, 0, 0, 0, 0, time.UTC)
	ts, ok := got.(time.Time)
	if !ok {
		t.Fatalf("ConvertValue returned %T, want time.Time", got)
	}
	if !ts.Equal(want) {
		t.Fatalf("ConvertValue = %v, want %v", ts, want)
	}
}

func TestConvertValueNil(t *testing.T) {
	got, err := ConvertValue(nil, dateElement())
	if err != nil {
		t.Fatalf("ConvertValue: %v", err)
	}
	if got != nil {
		t.Fatalf("ConvertValue(nil) = %v, want nil", got)
	}
}

func TestConvertValueUTF8(t *testing.T) {
	ct := format.UTF8
	elem := &format.SchemaElement{Name: "s", ConvertedType: &ct}
	got, err := ConvertValue([]byte("hello"), elem)
	if err != nil {
		t.Fatalf("ConvertValue: %v", err)
	}
	if got != "hello" {
		t.Fatalf("ConvertValue = %v, want %q", got, "hello")
	}
}

func TestConvertValueDecimalFromBytes(t *testing.T) {
	ct := format.Decimal
	scale := int32(2)
	elem := &format.SchemaElement{Name: "amount", ConvertedType: &ct, Scale: &scale}

	// big-endian two's complement for 12345 (0x3039)
	got, err := ConvertValue([]byte{0x30, 0x39}, elem)
	if err != nil {
		t.Fatalf("ConvertValue: %v", err)
	}
	dec, ok := got.(Decimal)
	if !ok {
		t.Fatalf("ConvertValue returned %T, want Decimal", got)
	}
	if dec.Unscaled.Int64() != 12345 || dec.Scale != 2 {
		t.Fatalf("Decimal = %+v, want unscaled 12345 scale 2", dec)
	}
	if dec.String() != "123.45" {
		t.Fatalf("Decimal.String() = %q, want %q", dec.String(), "123.45")
	}
}

func TestConvertValueBsonUnsupported(t *testing.T) {
	ct := format.Bson
	elem := &format.SchemaElement{Name: "b", ConvertedType: &ct}
	_, err := ConvertValue([]byte("x"), elem)
	if err == nil {
		t.Fatal("ConvertValue(BSON) expected an error, got nil")
	}
}

func TestConvertValueUint8Width(t *testing.T) {
	ct := format.Uint8
	elem := &format.SchemaElement{Name: "u", ConvertedType: &ct}
	got, err := ConvertValue(int32(250), elem)
	if err != nil {
		t.Fatalf("ConvertValue: %v", err)
	}
	if got != uint8(250) {
		t.Fatalf("ConvertValue = %v (%T), want uint8(250)", got, got)
	}
}
