// Package perr defines the fatal error kinds shared by every layer of the
// decoding pipeline, so that a truncated cursor read deep inside the RLE
// decoder and a bad footer magic in the metadata parser report through the
// same shape.
package perr

import "fmt"

// Kind identifies the category of a parquet decoding error.
type Kind int

const (
	_ Kind = iota
	// TruncatedInput means a cursor read crossed the end of the slice it
	// was given.
	TruncatedInput
	// InvalidMagic means the file or footer magic bytes did not read
	// "PAR1".
	InvalidMagic
	// InvalidMetadataLength means the footer's declared metadata length
	// was zero or did not fit within the file.
	InvalidMetadataLength
	// ThriftDecode means the Thrift Compact Protocol decoder encountered
	// an unknown wire type, an oversized varint, or malformed field
	// structure. It is also raised for malformed varint headers in the
	// RLE and DELTA_BINARY_PACKED decoders, out-of-range dictionary
	// indices, and unparsable JSON values.
	ThriftDecode
	// UnsupportedEncoding means a page declared an encoding outside
	// {PLAIN, PLAIN_DICTIONARY, RLE_DICTIONARY, RLE, BIT_PACKED,
	// DELTA_BINARY_PACKED, BYTE_STREAM_SPLIT}, or one of RLE/BIT_PACKED,
	// DELTA_BINARY_PACKED and BYTE_STREAM_SPLIT on a physical type it is
	// not decoded for.
	UnsupportedEncoding
	// UnsupportedConvertedType means a column declared BSON or INTERVAL.
	UnsupportedConvertedType
	// DecompressorMissing means a chunk referenced a codec absent from
	// the configured codec table.
	DecompressorMissing
	// DecompressionSizeMismatch means a codec returned a number of bytes
	// different from the page's declared uncompressed size.
	DecompressionSizeMismatch
	// LevelsByteLengthMismatch means a DATA_PAGE_V2's level sections did
	// not consume exactly their declared byte lengths.
	LevelsByteLengthMismatch
	// InternalInvariant means an assertion about the decoder's own state
	// failed: a record-assembly stack underflow, or a bit-pack cursor
	// running past its declared end.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case TruncatedInput:
		return "truncated input"
	case InvalidMagic:
		return "invalid magic"
	case InvalidMetadataLength:
		return "invalid metadata length"
	case ThriftDecode:
		return "thrift decode error"
	case UnsupportedEncoding:
		return "unsupported encoding"
	case UnsupportedConvertedType:
		return "unsupported converted type"
	case DecompressorMissing:
		return "decompressor missing"
	case DecompressionSizeMismatch:
		return "decompression size mismatch"
	case LevelsByteLengthMismatch:
		return "levels byte length mismatch"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "parquet error"
	}
}

// Error wraps a Kind with the context in which it was raised. No error kind
// implies retry: every kind is fatal to the current read and
// propagates to the caller unchanged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error of the given kind.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind around a lower-level error.
func Wrap(kind Kind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
