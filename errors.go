package parquet

import "github.com/goparquet/goparquet/internal/perr"

// Kind identifies the category of a parquet decoding error, so that callers
// can distinguish a transport failure from a malformed file without string
// matching.
type Kind = perr.Kind

const (
	TruncatedInput            = perr.TruncatedInput
	InvalidMagic               = perr.InvalidMagic
	InvalidMetadataLength      = perr.InvalidMetadataLength
	ThriftDecode               = perr.ThriftDecode
	UnsupportedEncoding        = perr.UnsupportedEncoding
	UnsupportedConvertedType   = perr.UnsupportedConvertedType
	DecompressorMissing        = perr.DecompressorMissing
	DecompressionSizeMismatch  = perr.DecompressionSizeMismatch
	LevelsByteLengthMismatch   = perr.LevelsByteLengthMismatch
	InternalInvariant          = perr.InternalInvariant
)

// Error is the error type returned for decoding failures, possibly wrapped
// (use errors.As); see Kind for the set of error categories. Configuration,
// schema and column-lookup errors and ByteSource transport errors are plain
// errors.
type Error = perr.Error
