package parquet

import (
	"encoding/binary"
	"testing"
)

// buildFooterFile assembles a minimal valid Parquet file: a 4-byte "PAR1"
// header, a hand-encoded Thrift Compact FileMetaData body (version=1,
// num_rows=100), a little-endian metadata-length footer field, and a
// trailing "PAR1".
func buildFooterFile() []byte {
	// field_1 (version, I32): header 0x15, value zigzag(1)=2.
	// field_3 (num_rows, I64, delta 2 from field_1): header (2<<4)|6=0x26,
	// value zigzag(100)=200 -> varint [0xC8, 0x01].
	// STOP.
	meta := []byte{0x15, 0x02, 0x26, 0xC8, 0x01, 0x00}

	buf := append([]byte{}, []byte("PAR1")...)
	buf = append(buf, meta...)

	var lenBytes [4]byte
	binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(meta)))
	buf = append(buf, lenBytes[:]...)
	buf = append(buf, []byte("PAR1")...)
	return buf
}

func TestReadMetadataRoundTrip(t *testing.T) {
	data := buildFooterFile()
	md, err := ReadMetadata(data)
	if err != nil {
		t.Fatalf("ReadMetadata: %v", err)
	}
	if md.Version != 1 {
		t.Fatalf("Version = %d, want 1", md.Version)
	}
	if md.NumRows != 100 {
		t.Fatalf("NumRows = %d, want 100", md.NumRows)
	}
	if md.MetadataLength != 6 {
		t.Fatalf("MetadataLength = %d, want 6", md.MetadataLength)
	}
}

// TestFooterLengthFieldDecoding pins the concrete footer scenario: a
// length field of 0x10 0x00 0x00 0x00 (little-endian 16) followed by the
// "PAR1" magic.
func TestFooterLengthFieldDecoding(t *testing.T) {
	tail := []byte{0x10, 0x00, 0x00, 0x00, 'P', 'A', 'R', '1'}
	length := int64(binary.LittleEndian.Uint32(tail[0:4]))
	if length != 16 {
		t.Fatalf("length = %d, want 16", length)
	}
	if !bytesEqualMagic(tail[4:8]) {
		t.Fatal("trailing 4 bytes do not match PAR1 magic")
	}
}

func TestReadMetadataRejectsBadMagic(t *testing.T) {
	data := buildFooterFile()
	corrupt := append([]byte{}, data...)
	corrupt[len(corrupt)-1] = 'X'
	if _, err := ReadMetadata(corrupt); err == nil {
		t.Fatal("ReadMetadata: expected error for bad footer magic, got nil")
	}
}

func TestReadMetadataRejectsShortFile(t *testing.T) {
	if _, err := ReadMetadata([]byte("PAR1")); err == nil {
		t.Fatal("ReadMetadata: expected error for short file, got nil")
	}
}

func TestReadMetadataRejectsOversizedLength(t *testing.T) {
	data := buildFooterFile()
	// Overwrite the length field (just before the trailing PAR1) with a
	// value larger than the file itself.
	binary.LittleEndian.PutUint32(data[len(data)-8:len(data)-4], uint32(len(data)+100))
	if _, err := ReadMetadata(data); err == nil {
		t.Fatal("ReadMetadata: expected error for oversized metadata length, got nil")
	}
}
