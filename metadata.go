package parquet

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/internal/debug"
	"github.com/goparquet/goparquet/internal/perr"
	"github.com/goparquet/goparquet/internal/thrift"
)

// magic is the four ASCII bytes "PAR1" framing every Parquet file.
var magic = [4]byte{'P', 'A', 'R', '1'}

// DefaultInitialFetchSize is the size of the trailing range fetched
// speculatively by ReadMetadataAsync (fetching the trailing 512 KiB
// (configurable) as a single request).
const DefaultInitialFetchSize = 512 * 1024

// ReadMetadata decodes a FileMetaData from a complete in-memory copy of a
// Parquet file.
func ReadMetadata(data []byte) (*format.FileMetaData, error) {
	if len(data) < 8 {
		return nil, perr.New(perr.InvalidMagic, "file is shorter than the 8-byte footer")
	}
	if len(data) >= 4 && !bytesEqualMagic(data[:4]) {
		return nil, perr.New(perr.InvalidMagic, "header does not start with PAR1")
	}
	tail := data[len(data)-8:]
	if !bytesEqualMagic(tail[4:8]) {
		return nil, perr.New(perr.InvalidMagic, "footer does not end with PAR1")
	}
	metadataLength := int64(binary.LittleEndian.Uint32(tail[0:4]))
	fileLen := int64(len(data))
	if metadataLength <= 0 || metadataLength >= fileLen-8 {
		return nil, perr.New(perr.InvalidMetadataLength, "metadata length %d invalid for file of size %d", metadataLength, fileLen)
	}
	start := fileLen - 8 - metadataLength
	return decodeFileMetaData(data[start : fileLen-8])
}

func bytesEqualMagic(b []byte) bool {
	return len(b) == 4 && b[0] == magic[0] && b[1] == magic[1] && b[2] == magic[2] && b[3] == magic[3]
}

// ReadMetadataAsync locates and decodes FileMetaData from a ByteSource,
// issuing at most two range requests: an initial speculative fetch of the
// trailing initialFetchSize bytes, and — only if the metadata does not fit
// in that tail — one further request for exactly the missing prefix.
func ReadMetadataAsync(ctx context.Context, src ByteSource, initialFetchSize int64) (*format.FileMetaData, error) {
	if initialFetchSize <= 0 {
		initialFetchSize = DefaultInitialFetchSize
	}
	fileLen, err := src.Len(ctx)
	if err != nil {
		return nil, err
	}
	if fileLen < 8 {
		return nil, perr.New(perr.InvalidMagic, "file is shorter than the 8-byte footer")
	}

	tailStart := fileLen - initialFetchSize
	if tailStart < 0 {
		tailStart = 0
	}
	tail, err := src.Slice(ctx, tailStart, fileLen)
	if err != nil {
		return nil, err
	}
	debug.Format("metadata: fetched tail [%d,%d)", tailStart, fileLen)

	footer := tail[len(tail)-8:]
	if !bytesEqualMagic(footer[4:8]) {
		return nil, perr.New(perr.InvalidMagic, "footer does not end with PAR1")
	}
	metadataLength := int64(binary.LittleEndian.Uint32(footer[0:4]))
	if metadataLength <= 0 || metadataLength >= fileLen-8 {
		return nil, perr.New(perr.InvalidMetadataLength, "metadata length %d invalid for file of size %d", metadataLength, fileLen)
	}
	metaStart := fileLen - 8 - metadataLength
	metaEnd := fileLen - 8

	if metaStart >= tailStart {
		// The whole metadata region is already inside the tail we fetched.
		off := metaStart - tailStart
		return decodeFileMetaData(tail[off : off+metadataLength])
	}

	// The metadata spills past what the speculative fetch covered; issue
	// one more request for exactly the missing prefix.
	missing, err := src.Slice(ctx, metaStart, tailStart)
	if err != nil {
		return nil, err
	}
	debug.Format("metadata: fetched missing prefix [%d,%d)", metaStart, tailStart)
	full := append(missing, tail[:len(tail)-8]...)
	return decodeFileMetaData(full)
}

func decodeFileMetaData(data []byte) (*format.FileMetaData, error) {
	fields, n, err := thrift.Struct(data)
	if err != nil {
		return nil, perr.Wrap(perr.ThriftDecode, err, "decoding FileMetaData")
	}
	md := &format.FileMetaData{MetadataLength: n}

	if v, ok := fields["field_1"]; ok {
		md.Version = int32(v.Int)
	}
	if v, ok := fields["field_2"]; ok {
		md.Schema = make([]format.SchemaElement, len(v.List))
		for i, e := range v.List {
			se, err := decodeSchemaElement(e)
			if err != nil {
				return nil, err
			}
			md.Schema[i] = se
		}
	}
	if v, ok := fields["field_3"]; ok {
		md.NumRows = v.Int
	}
	if v, ok := fields["field_4"]; ok {
		md.RowGroups = make([]format.RowGroup, len(v.List))
		for i, e := range v.List {
			rg, err := decodeRowGroup(e)
			if err != nil {
				return nil, err
			}
			md.RowGroups[i] = rg
		}
	}
	if v, ok := fields["field_5"]; ok {
		md.KeyValueMetadata = decodeKeyValueList(v)
	}
	if v, ok := fields["field_6"]; ok {
		s := string(v.Bytes)
		md.CreatedBy = &s
	}
	return md, nil
}

func decodeSchemaElement(v thrift.Value) (format.SchemaElement, error) {
	var se format.SchemaElement
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			t := format.Type(int32(f.Int))
			se.Type = &t
		case "field_2":
			n := int32(f.Int)
			se.TypeLength = &n
		case "field_3":
			r := format.FieldRepetitionType(int32(f.Int))
			se.RepetitionType = &r
		case "field_4":
			se.Name = string(f.Bytes)
		case "field_5":
			n := int32(f.Int)
			se.NumChildren = &n
		case "field_6":
			c := format.ConvertedType(int32(f.Int))
			se.ConvertedType = &c
		case "field_7":
			n := int32(f.Int)
			se.Scale = &n
		case "field_8":
			n := int32(f.Int)
			se.Precision = &n
		case "field_9":
			n := int32(f.Int)
			se.FieldID = &n
		}
	}
	return se, nil
}

func decodeRowGroup(v thrift.Value) (format.RowGroup, error) {
	var rg format.RowGroup
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			rg.Columns = make([]format.ColumnChunk, len(f.List))
			for i, e := range f.List {
				cc, err := decodeColumnChunk(e)
				if err != nil {
					return rg, err
				}
				rg.Columns[i] = cc
			}
		case "field_2":
			rg.TotalByteSize = f.Int
		case "field_3":
			rg.NumRows = f.Int
		case "field_4":
			rg.SortingColumns = make([]format.SortingColumn, len(f.List))
			for i, e := range f.List {
				rg.SortingColumns[i] = decodeSortingColumn(e)
			}
		}
	}
	return rg, nil
}

func decodeSortingColumn(v thrift.Value) format.SortingColumn {
	var sc format.SortingColumn
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			sc.ColumnIdx = int32(f.Int)
		case "field_2":
			sc.Descending = f.Bool
		case "field_3":
			sc.NullsFirst = f.Bool
		}
	}
	return sc
}

func decodeColumnChunk(v thrift.Value) (format.ColumnChunk, error) {
	var cc format.ColumnChunk
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			s := string(f.Bytes)
			cc.FilePath = &s
		case "field_2":
			cc.FileOffset = f.Int
		case "field_3":
			cm, err := decodeColumnMetaData(f)
			if err != nil {
				return cc, err
			}
			cc.MetaData = &cm
		}
	}
	return cc, nil
}

func decodeColumnMetaData(v thrift.Value) (format.ColumnMetaData, error) {
	var cm format.ColumnMetaData
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			cm.Type = format.Type(int32(f.Int))
		case "field_2":
			cm.Encodings = make([]format.Encoding, len(f.List))
			for i, e := range f.List {
				cm.Encodings[i] = format.Encoding(int32(e.Int))
			}
		case "field_3":
			cm.PathInSchema = make([]string, len(f.List))
			for i, e := range f.List {
				cm.PathInSchema[i] = string(e.Bytes)
			}
		case "field_4":
			cm.Codec = format.CompressionCodec(int32(f.Int))
		case "field_5":
			cm.NumValues = f.Int
		case "field_6":
			cm.TotalUncompressedSize = f.Int
		case "field_7":
			cm.TotalCompressedSize = f.Int
		case "field_8":
			cm.KeyValueMetadata = decodeKeyValueList(f)
		case "field_9":
			cm.DataPageOffset = f.Int
		case "field_10":
			n := f.Int
			cm.IndexPageOffset = &n
		case "field_11":
			n := f.Int
			cm.DictionaryPageOffset = &n
		case "field_12":
			st := decodeStatistics(f)
			cm.Statistics = &st
		case "field_13":
			cm.EncodingStats = make([]format.PageEncodingStats, len(f.List))
			for i, e := range f.List {
				cm.EncodingStats[i] = decodePageEncodingStats(e)
			}
		}
	}
	return cm, nil
}

func decodePageEncodingStats(v thrift.Value) format.PageEncodingStats {
	var s format.PageEncodingStats
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			s.PageType = format.PageType(int32(f.Int))
		case "field_2":
			s.Encoding = format.Encoding(int32(f.Int))
		case "field_3":
			s.Count = int32(f.Int)
		}
	}
	return s
}

func decodeStatistics(v thrift.Value) format.Statistics {
	var s format.Statistics
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			s.Max = f.Bytes
		case "field_2":
			s.Min = f.Bytes
		case "field_3":
			n := f.Int
			s.NullCount = &n
		case "field_4":
			n := f.Int
			s.DistinctCount = &n
		case "field_5":
			s.MaxValue = f.Bytes
			s.IsMaxValueSet = true
		case "field_6":
			s.MinValue = f.Bytes
			s.IsMinValueSet = true
		}
	}
	return s
}

func decodeKeyValueList(v thrift.Value) []format.KeyValue {
	kvs := make([]format.KeyValue, len(v.List))
	for i, e := range v.List {
		var kv format.KeyValue
		for k, f := range e.Struct {
			switch k {
			case "field_1":
				kv.Key = string(f.Bytes)
			case "field_2":
				s := string(f.Bytes)
				kv.Value = &s
			}
		}
		kvs[i] = kv
	}
	return kvs
}

// decodePageHeader decodes a PageHeader from the front of data, returning
// the header and the number of bytes it consumed.
func decodePageHeader(data []byte) (*format.PageHeader, int, error) {
	fields, n, err := thrift.Struct(data)
	if err != nil {
		return nil, 0, perr.Wrap(perr.ThriftDecode, err, "decoding PageHeader")
	}
	ph := &format.PageHeader{}
	for k, f := range fields {
		switch k {
		case "field_1":
			ph.Type = format.PageType(int32(f.Int))
		case "field_2":
			ph.UncompressedPageSize = int32(f.Int)
		case "field_3":
			ph.CompressedPageSize = int32(f.Int)
		case "field_4":
			c := int32(f.Int)
			ph.Crc = &c
		case "field_5":
			dph := decodeDataPageHeader(f)
			ph.DataPageHeader = &dph
		case "field_7":
			dict := decodeDictionaryPageHeader(f)
			ph.DictionaryPageHeader = &dict
		case "field_8":
			v2 := decodeDataPageHeaderV2(f)
			ph.DataPageHeaderV2 = &v2
		}
	}
	if ph.Type != format.DataPage && ph.Type != format.DictionaryPage && ph.Type != format.DataPageV2 && ph.Type != format.IndexPage {
		return nil, n, fmt.Errorf("parquet: page header declares unknown page type %d", ph.Type)
	}
	return ph, n, nil
}

func decodeDataPageHeader(v thrift.Value) format.DataPageHeader {
	var h format.DataPageHeader
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			h.NumValues = int32(f.Int)
		case "field_2":
			h.Encoding = format.Encoding(int32(f.Int))
		case "field_3":
			h.DefinitionLevelEncoding = format.Encoding(int32(f.Int))
		case "field_4":
			h.RepetitionLevelEncoding = format.Encoding(int32(f.Int))
		case "field_5":
			s := decodeStatistics(f)
			h.Statistics = &s
		}
	}
	return h
}

func decodeDataPageHeaderV2(v thrift.Value) format.DataPageHeaderV2 {
	h := format.DataPageHeaderV2{IsCompressed: true}
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			h.NumValues = int32(f.Int)
		case "field_2":
			h.NumNulls = int32(f.Int)
		case "field_3":
			h.NumRows = int32(f.Int)
		case "field_4":
			h.Encoding = format.Encoding(int32(f.Int))
		case "field_5":
			h.DefinitionLevelsByteLength = int32(f.Int)
		case "field_6":
			h.RepetitionLevelsByteLength = int32(f.Int)
		case "field_7":
			h.IsCompressed = f.Bool
		case "field_8":
			s := decodeStatistics(f)
			h.Statistics = &s
		}
	}
	return h
}

func decodeDictionaryPageHeader(v thrift.Value) format.DictionaryPageHeader {
	var h format.DictionaryPageHeader
	for k, f := range v.Struct {
		switch k {
		case "field_1":
			h.NumValues = int32(f.Int)
		case "field_2":
			h.Encoding = format.Encoding(int32(f.Int))
		case "field_3":
			h.IsSorted = f.Bool
		}
	}
	return h
}
