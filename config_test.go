package parquet

import (
	"testing"

	"github.com/goparquet/goparquet/format"
)

func TestReadConfigRowEndDefaulting(t *testing.T) {
	tests := []struct {
		name      string
		rowEnd    int64
		totalRows int64
		want      int64
	}{
		{"zero means end of file", 0, 100, 100},
		{"past end of file clamps", 500, 100, 100},
		{"within range is kept", 40, 100, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewReadConfig(WithRowRange(0, tt.rowEnd))
			if got := c.rowEnd(tt.totalRows); got != tt.want {
				t.Fatalf("rowEnd(%d) = %d, want %d", tt.totalRows, got, tt.want)
			}
		})
	}
}

func TestReadConfigValidate(t *testing.T) {
	if err := NewReadConfig(WithRowRange(-1, 10)).validate(); err == nil {
		t.Fatal("validate: expected error for negative row start, got nil")
	}
	if err := NewReadConfig(WithRowRange(10, 5)).validate(); err == nil {
		t.Fatal("validate: expected error for row_end before row_start, got nil")
	}
	if err := NewReadConfig(WithRowRange(0, 10)).validate(); err != nil {
		t.Fatalf("validate: unexpected error: %v", err)
	}
}

func TestDefaultCodecsCoversEveryWiredCodec(t *testing.T) {
	c := NewReadConfig()
	for _, code := range []format.CompressionCodec{
		format.Uncompressed, format.Snappy, format.Gzip, format.Zstd, format.Lz4Raw, format.Brotli,
	} {
		if _, ok := c.Codecs.Get(code); !ok {
			t.Fatalf("DefaultCodecs: missing codec %s", code)
		}
	}
}
