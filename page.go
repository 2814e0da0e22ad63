package parquet

import (
	"github.com/goparquet/goparquet/compress"
	"github.com/goparquet/goparquet/encoding/bytestreamsplit"
	"github.com/goparquet/goparquet/encoding/delta"
	"github.com/goparquet/goparquet/encoding/plain"
	"github.com/goparquet/goparquet/encoding/rle"
	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/internal/bitpack"
	"github.com/goparquet/goparquet/internal/perr"
	"github.com/goparquet/goparquet/schema"
)

// Page is the decoded content of one DATA_PAGE or DATA_PAGE_V2: parallel
// definition/repetition levels and the physical values they describe —
// a decoded triple of levels and values.
type Page struct {
	RepetitionLevels []int32
	DefinitionLevels []int32
	Values           []any
	NumRows          int
}

// bitWidthFor returns ceil(log2(max+1)), the number of bits needed to
// represent every integer in [0, max].
func bitWidthFor(max int) int {
	if max <= 0 {
		return 0
	}
	w := 0
	for (1 << uint(w)) <= max {
		w++
	}
	return w
}

// decodePlainValues decodes count PLAIN-encoded physical values of typ from
// data, boxing each into an `any`.
func decodePlainValues(data []byte, typ format.Type, typeLength int, count int) ([]any, error) {
	out := make([]any, count)
	switch typ {
	case format.Boolean:
		vs, err := plain.DecodeBoolean(data, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	case format.Int32:
		vs, err := plain.DecodeInt32(data, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	case format.Int64:
		vs, err := plain.DecodeInt64(data, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	case format.Int96:
		vs, err := plain.DecodeInt96(data, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	case format.Float:
		vs, err := plain.DecodeFloat32(data, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	case format.Double:
		vs, err := plain.DecodeFloat64(data, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	case format.ByteArray:
		vs, err := plain.DecodeByteArray(data, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	case format.FixedLenByteArray:
		vs, err := plain.DecodeFixedLenByteArray(data, count, typeLength)
		if err != nil {
			return nil, err
		}
		for i, v := range vs {
			out[i] = v
		}
	default:
		return nil, perr.New(perr.InternalInvariant, "unknown physical type %d", typ)
	}
	return out, nil
}

// decodeValues decodes count values of encoding enc from data, resolving
// dictionary indices against dict when the encoding is dictionary-based.
func decodeValues(data []byte, typ format.Type, typeLength int, enc format.Encoding, count int, dict *Dictionary) ([]any, error) {
	switch enc {
	case format.Plain:
		return decodePlainValues(data, typ, typeLength, count)

	case format.PlainDictionary, format.RLEDictionary:
		if dict == nil {
			return nil, perr.New(perr.InternalInvariant, "dictionary-encoded page with no dictionary loaded")
		}
		idx, err := rle.DecodeDictionaryIndices(data, count)
		if err != nil {
			return nil, err
		}
		out := make([]any, count)
		for i, di := range idx {
			v, ok := dict.Lookup(int(di))
			if !ok {
				return nil, perr.New(perr.ThriftDecode, "dictionary index %d out of range (dictionary has %d entries)", di, len(dict.Values))
			}
			out[i] = v
		}
		return out, nil

	case format.RLE, format.BitPacked:
		// Legacy value encoding, only ever used for BOOLEAN columns.
		if typ != format.Boolean {
			return nil, perr.New(perr.UnsupportedEncoding, "RLE value encoding is only supported for BOOLEAN columns")
		}
		vs, _, err := rle.DecodeLengthPrefixed(data, 1, count)
		if err != nil {
			return nil, err
		}
		out := make([]any, count)
		for i, v := range vs {
			out[i] = v != 0
		}
		return out, nil

	case format.DeltaBinaryPacked:
		switch typ {
		case format.Int32:
			vs, _, err := delta.DecodeInt32(data)
			if err != nil {
				return nil, err
			}
			out := make([]any, len(vs))
			for i, v := range vs {
				out[i] = v
			}
			return out, nil
		case format.Int64:
			vs, _, err := delta.DecodeInt64(data)
			if err != nil {
				return nil, err
			}
			out := make([]any, len(vs))
			for i, v := range vs {
				out[i] = v
			}
			return out, nil
		default:
			return nil, perr.New(perr.UnsupportedEncoding, "DELTA_BINARY_PACKED is only supported for INT32/INT64 columns")
		}

	case format.ByteStreamSplit:
		switch typ {
		case format.Float:
			vs, err := bytestreamsplit.DecodeFloat32(data, count)
			if err != nil {
				return nil, err
			}
			out := make([]any, count)
			for i, v := range vs {
				out[i] = v
			}
			return out, nil
		case format.Double:
			vs, err := bytestreamsplit.DecodeFloat64(data, count)
			if err != nil {
				return nil, err
			}
			out := make([]any, count)
			for i, v := range vs {
				out[i] = v
			}
			return out, nil
		default:
			return nil, perr.New(perr.UnsupportedEncoding, "BYTE_STREAM_SPLIT is only supported for FLOAT/DOUBLE columns")
		}

	default:
		return nil, perr.New(perr.UnsupportedEncoding, "unsupported page encoding %s", enc)
	}
}

// readDataPageV1 decodes an uncompressed DATA_PAGE body.
func readDataPageV1(body []byte, header *format.DataPageHeader, node *schema.Node, typ format.Type, typeLength int, dict *Dictionary) (*Page, error) {
	numValues := int(header.NumValues)
	c := bitpack.NewCursor(body)

	page := &Page{NumRows: numValues}

	if node.MaxRepetitionLevel > 0 {
		bitWidth := bitWidthFor(node.MaxRepetitionLevel)
		vs, n, err := rle.DecodeLengthPrefixed(c.Remaining(), bitWidth, numValues)
		if err != nil {
			return nil, perr.Wrap(perr.ThriftDecode, err, "decoding repetition levels")
		}
		if err := c.Skip(n); err != nil {
			return nil, err
		}
		page.RepetitionLevels = toInt32s(vs)
		rows := 0
		for _, v := range vs {
			if v == 0 {
				rows++
			}
		}
		page.NumRows = rows
	}

	if node.MaxDefinitionLevel > 0 {
		bitWidth := bitWidthFor(node.MaxDefinitionLevel)
		vs, n, err := rle.DecodeLengthPrefixed(c.Remaining(), bitWidth, numValues)
		if err != nil {
			return nil, perr.Wrap(perr.ThriftDecode, err, "decoding definition levels")
		}
		if err := c.Skip(n); err != nil {
			return nil, err
		}
		page.DefinitionLevels = toInt32s(vs)
	}

	nonNull := numValues
	if page.DefinitionLevels != nil {
		nonNull = 0
		for _, d := range page.DefinitionLevels {
			if int(d) == node.MaxDefinitionLevel {
				nonNull++
			}
		}
	}

	values, err := decodeValues(c.Remaining(), typ, typeLength, header.Encoding, nonNull, dict)
	if err != nil {
		return nil, err
	}
	page.Values = values
	return page, nil
}

// readDataPageV2 decodes an DATA_PAGE_V2 body, whose repetition/definition
// level sections are always raw (uncompressed, no length prefix) even when
// the values section is compressed.
func readDataPageV2(body []byte, header *format.DataPageHeaderV2, uncompressedPageSize int, node *schema.Node, typ format.Type, typeLength int, dict *Dictionary, codec compress.Codec) (*Page, error) {
	numValues := int(header.NumValues)
	repLen := int(header.RepetitionLevelsByteLength)
	defLen := int(header.DefinitionLevelsByteLength)
	if repLen+defLen > len(body) {
		return nil, perr.New(perr.TruncatedInput, "DATA_PAGE_V2 levels byte length exceeds page body")
	}

	page := &Page{NumRows: numValues}

	if repLen > 0 {
		bitWidth := bitWidthFor(node.MaxRepetitionLevel)
		vs, n, err := rle.DecodeHybrid(body[:repLen], bitWidth, numValues)
		if err != nil {
			return nil, err
		}
		if n != repLen {
			return nil, perr.New(perr.LevelsByteLengthMismatch, "repetition levels consumed %d bytes, header declared %d", n, repLen)
		}
		page.RepetitionLevels = toInt32s(vs)
		rows := 0
		for _, v := range vs {
			if v == 0 {
				rows++
			}
		}
		page.NumRows = rows
	}

	if defLen > 0 {
		bitWidth := bitWidthFor(node.MaxDefinitionLevel)
		vs, n, err := rle.DecodeHybrid(body[repLen:repLen+defLen], bitWidth, numValues)
		if err != nil {
			return nil, err
		}
		if n != defLen {
			return nil, perr.New(perr.LevelsByteLengthMismatch, "definition levels consumed %d bytes, header declared %d", n, defLen)
		}
		page.DefinitionLevels = toInt32s(vs)
	}

	valuesBody := body[repLen+defLen:]
	nonNull := numValues - int(header.NumNulls)

	if header.IsCompressed && codec != nil {
		expected := uncompressedPageSize - repLen - defLen
		decoded, err := codec.Decode(nil, valuesBody, expected)
		if err != nil {
			return nil, err
		}
		if len(decoded) != expected {
			return nil, perr.New(perr.DecompressionSizeMismatch, "values section decompressed to %d bytes, expected %d", len(decoded), expected)
		}
		valuesBody = decoded
	}

	values, err := decodeValues(valuesBody, typ, typeLength, header.Encoding, nonNull, dict)
	if err != nil {
		return nil, err
	}
	page.Values = values
	return page, nil
}

// readDictionaryPage decodes a DICTIONARY_PAGE: values are always
// PLAIN-encoded regardless of the declared encoding.
func readDictionaryPage(body []byte, header *format.DictionaryPageHeader, typ format.Type, typeLength int) ([]any, error) {
	return decodePlainValues(body, typ, typeLength, int(header.NumValues))
}

func toInt32s(vs []uint64) []int32 {
	out := make([]int32, len(vs))
	for i, v := range vs {
		out[i] = int32(v)
	}
	return out
}
