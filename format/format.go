// Package format defines the Go types that mirror the Thrift structures of
// the Parquet file format (metadata, page headers, and their enums).
//
// https://github.com/apache/parquet-format/blob/master/src/main/thrift/parquet.thrift
package format

import "sort"

// Type is the physical storage type of a column, thrift field Type in
// SchemaElement.
type Type int32

const (
	Boolean           Type = 0
	Int32             Type = 1
	Int64             Type = 2
	Int96             Type = 3
	Float             Type = 4
	Double            Type = 5
	ByteArray         Type = 6
	FixedLenByteArray Type = 7
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN_TYPE"
	}
}

// FieldRepetitionType is the repetition type carried on every non-root
// SchemaElement.
type FieldRepetitionType int32

const (
	Required FieldRepetitionType = 0
	Optional FieldRepetitionType = 1
	Repeated FieldRepetitionType = 2
)

func (r FieldRepetitionType) String() string {
	switch r {
	case Required:
		return "REQUIRED"
	case Optional:
		return "OPTIONAL"
	case Repeated:
		return "REPEATED"
	default:
		return "UNKNOWN_REPETITION"
	}
}

// Encoding identifies how the values of a page are serialized.
type Encoding int32

const (
	Plain                Encoding = 0
	PlainDictionary      Encoding = 2
	RLE                  Encoding = 3
	BitPacked            Encoding = 4
	DeltaBinaryPacked    Encoding = 5
	DeltaLengthByteArray Encoding = 6
	DeltaByteArray       Encoding = 7
	RLEDictionary        Encoding = 8
	ByteStreamSplit      Encoding = 9
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN_ENCODING"
	}
}

// CompressionCodec identifies the codec used to compress a page body.
type CompressionCodec int32

const (
	Uncompressed CompressionCodec = 0
	Snappy       CompressionCodec = 1
	Gzip         CompressionCodec = 2
	Lzo          CompressionCodec = 3
	Brotli       CompressionCodec = 4
	Lz4          CompressionCodec = 5
	Zstd         CompressionCodec = 6
	Lz4Raw       CompressionCodec = 7
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Lzo:
		return "LZO"
	case Brotli:
		return "BROTLI"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Lz4Raw:
		return "LZ4_RAW"
	default:
		return "UNKNOWN_CODEC"
	}
}

// PageType distinguishes the four kinds of pages a column chunk may contain.
type PageType int32

const (
	DataPage       PageType = 0
	IndexPage      PageType = 1
	DictionaryPage PageType = 2
	DataPageV2     PageType = 3
)

func (t PageType) String() string {
	switch t {
	case DataPage:
		return "DATA_PAGE"
	case IndexPage:
		return "INDEX_PAGE"
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV2:
		return "DATA_PAGE_V2"
	default:
		return "UNKNOWN_PAGE_TYPE"
	}
}

// ConvertedType is the legacy logical-type annotation carried on a
// SchemaElement (superseded by LogicalType in newer files, but still the
// only annotation most writers emit).
type ConvertedType int32

const (
	UTF8            ConvertedType = 0
	Map             ConvertedType = 1
	MapKeyValue     ConvertedType = 2
	List            ConvertedType = 3
	Enum            ConvertedType = 4
	Decimal         ConvertedType = 5
	Date            ConvertedType = 6
	TimeMillis      ConvertedType = 7
	TimeMicros      ConvertedType = 8
	TimestampMillis ConvertedType = 9
	TimestampMicros ConvertedType = 10
	Uint8           ConvertedType = 11
	Uint16          ConvertedType = 12
	Uint32          ConvertedType = 13
	Uint64          ConvertedType = 14
	Int8            ConvertedType = 15
	Int16           ConvertedType = 16
	Int32Converted  ConvertedType = 17
	Int64Converted  ConvertedType = 18
	Json            ConvertedType = 19
	Bson            ConvertedType = 20
	Interval        ConvertedType = 21
)

func (c ConvertedType) String() string {
	switch c {
	case UTF8:
		return "UTF8"
	case Map:
		return "MAP"
	case MapKeyValue:
		return "MAP_KEY_VALUE"
	case List:
		return "LIST"
	case Enum:
		return "ENUM"
	case Decimal:
		return "DECIMAL"
	case Date:
		return "DATE"
	case TimeMillis:
		return "TIME_MILLIS"
	case TimeMicros:
		return "TIME_MICROS"
	case TimestampMillis:
		return "TIMESTAMP_MILLIS"
	case TimestampMicros:
		return "TIMESTAMP_MICROS"
	case Uint8:
		return "UINT_8"
	case Uint16:
		return "UINT_16"
	case Uint32:
		return "UINT_32"
	case Uint64:
		return "UINT_64"
	case Int8:
		return "INT_8"
	case Int16:
		return "INT_16"
	case Int32Converted:
		return "INT_32"
	case Int64Converted:
		return "INT_64"
	case Json:
		return "JSON"
	case Bson:
		return "BSON"
	case Interval:
		return "INTERVAL"
	default:
		return "UNKNOWN_CONVERTED_TYPE"
	}
}

// SchemaElement is one node of the flat, depth-first schema list carried in
// FileMetaData.Schema.
type SchemaElement struct {
	Type           *Type
	TypeLength     *int32
	RepetitionType *FieldRepetitionType
	Name           string
	NumChildren    *int32
	ConvertedType  *ConvertedType
	Scale          *int32
	Precision      *int32
	FieldID        *int32
}

// Statistics holds the optional per-column-chunk statistics.
type Statistics struct {
	Max            []byte
	Min            []byte
	NullCount      *int64
	DistinctCount  *int64
	MaxValue       []byte
	MinValue       []byte
	IsMaxValueSet  bool
	IsMinValueSet  bool
}

// SortingColumn describes one column of a row group's declared sort order.
type SortingColumn struct {
	ColumnIdx  int32
	Descending bool
	NullsFirst bool
}

// PageEncodingStats counts how many pages of a given type used a given
// encoding within a column chunk.
type PageEncodingStats struct {
	PageType PageType
	Encoding Encoding
	Count    int32
}

// ColumnMetaData is the thrift ColumnMetaData struct, field ids as decoded
// by the metadata parser: 1=Type 2=Encodings 3=PathInSchema 4=Codec
// 5=NumValues 6=TotalUncompressedSize 7=TotalCompressedSize
// 8=KeyValueMetadata 9=DataPageOffset 10=IndexPageOffset
// 11=DictionaryPageOffset 12=Statistics 13=EncodingStats.
type ColumnMetaData struct {
	Type                  Type
	Encodings             []Encoding
	PathInSchema          []string
	Codec                 CompressionCodec
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	KeyValueMetadata      []KeyValue
	DataPageOffset        int64
	IndexPageOffset       *int64
	DictionaryPageOffset  *int64
	Statistics            *Statistics
	EncodingStats         []PageEncodingStats
}

// ColumnChunk names one column's storage within a row group.
type ColumnChunk struct {
	FilePath   *string
	FileOffset int64
	MetaData   *ColumnMetaData
}

// RowGroup groups the column chunks that together hold a contiguous set of
// rows.
type RowGroup struct {
	Columns        []ColumnChunk
	TotalByteSize  int64
	NumRows        int64
	SortingColumns []SortingColumn
}

// KeyValue is a single free-form metadata entry.
type KeyValue struct {
	Key   string
	Value *string
}

// FileMetaData is the root Thrift structure stored in a Parquet file's
// footer.
type FileMetaData struct {
	Version          int32
	Schema           []SchemaElement
	NumRows          int64
	RowGroups        []RowGroup
	KeyValueMetadata []KeyValue
	CreatedBy        *string

	// MetadataLength is not part of the Thrift struct; it is the byte
	// length consumed while decoding it, recorded for diagnostics.
	MetadataLength int
}

// DataPageHeader is the type-specific header of a DATA_PAGE.
type DataPageHeader struct {
	NumValues               int32
	Encoding                Encoding
	DefinitionLevelEncoding Encoding
	RepetitionLevelEncoding Encoding
	Statistics              *Statistics
}

// DataPageHeaderV2 is the type-specific header of a DATA_PAGE_V2.
type DataPageHeaderV2 struct {
	NumValues                  int32
	NumNulls                   int32
	NumRows                    int32
	Encoding                   Encoding
	DefinitionLevelsByteLength int32
	RepetitionLevelsByteLength int32
	IsCompressed               bool
	Statistics                 *Statistics
}

// DictionaryPageHeader is the type-specific header of a DICTIONARY_PAGE.
type DictionaryPageHeader struct {
	NumValues int32
	Encoding  Encoding
	IsSorted  bool
}

// PageHeader is the common envelope preceding every page body.
type PageHeader struct {
	Type                 PageType
	UncompressedPageSize  int32
	CompressedPageSize    int32
	Crc                   *int32
	DataPageHeader        *DataPageHeader
	DictionaryPageHeader  *DictionaryPageHeader
	DataPageHeaderV2      *DataPageHeaderV2
}

// SortKeyValueMetadata sorts a slice of KeyValue entries by key then value,
// used when a deterministic ordering of free-form metadata is required.
func SortKeyValueMetadata(kv []KeyValue) {
	sort.Slice(kv, func(i, j int) bool {
		if kv[i].Key != kv[j].Key {
			return kv[i].Key < kv[j].Key
		}
		if kv[i].Value == nil || kv[j].Value == nil {
			return kv[j].Value != nil
		}
		return *kv[i].Value < *kv[j].Value
	})
}
