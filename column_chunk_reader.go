package parquet

import (
	"context"

	"github.com/goparquet/goparquet/compress"
	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/internal/perr"
	"github.com/goparquet/goparquet/schema"
)

// ColumnChunkReader walks every page of one column chunk, threading the
// chunk's dictionary through data pages and pruning by row range.
type ColumnChunkReader struct {
	node   *schema.Node
	chunk  *format.ColumnChunk
	codecs compress.Registry
}

// NewColumnChunkReader builds a reader for one column chunk. node is the
// SchemaTree leaf the chunk belongs to.
func NewColumnChunkReader(node *schema.Node, chunk *format.ColumnChunk, codecs compress.Registry) *ColumnChunkReader {
	return &ColumnChunkReader{node: node, chunk: chunk, codecs: codecs}
}

// startOffset returns min(dictionary_page_offset, data_page_offset) when a
// dictionary page is present, else data_page_offset.
func (r *ColumnChunkReader) startOffset() int64 {
	cm := r.chunk.MetaData
	if cm.DictionaryPageOffset != nil && *cm.DictionaryPageOffset < cm.DataPageOffset {
		return *cm.DictionaryPageOffset
	}
	return cm.DataPageOffset
}

// codec resolves the chunk's compression codec, returning nil for
// UNCOMPRESSED (which never dispatches through the codec table).
func (r *ColumnChunkReader) codec() (compress.Codec, error) {
	cm := r.chunk.MetaData
	if cm.Codec == format.Uncompressed {
		return nil, nil
	}
	c, ok := r.codecs.Get(cm.Codec)
	if !ok {
		return nil, perr.New(perr.DecompressorMissing, "no codec registered for %s", cm.Codec)
	}
	return c, nil
}

// ReadRows fetches the chunk's full compressed byte range from src and
// decodes pages until the running row count reaches rowEnd, honoring
// row-range pruning: pages entirely before rowStart are
// byte-skipped (header decoded, body left compressed) for non-repeated
// columns, since their row count is known without decoding values; for
// repeated columns every page must be decoded to keep repetition-level
// state correct.
func (r *ColumnChunkReader) ReadRows(ctx context.Context, src ByteSource, rowStart, rowEnd int64) ([]*Page, error) {
	cm := r.chunk.MetaData
	start := r.startOffset()
	end := start + cm.TotalCompressedSize

	data, err := src.Slice(ctx, start, end)
	if err != nil {
		return nil, err
	}

	codec, err := r.codec()
	if err != nil {
		return nil, err
	}

	repeated := r.node.MaxRepetitionLevel > 0
	typ := format.Boolean
	if r.node.Element.Type != nil {
		typ = *r.node.Element.Type
	}
	typeLength := 0
	if r.node.Element.TypeLength != nil {
		typeLength = int(*r.node.Element.TypeLength)
	}

	var dict *Dictionary
	var pages []*Page
	var rowsSeen int64

	offset := 0
	for offset < len(data) && rowsSeen < rowEnd {
		header, headerLen, err := decodePageHeader(data[offset:])
		if err != nil {
			return nil, err
		}
		pageLen := headerLen + int(header.CompressedPageSize)
		if offset+pageLen > len(data) {
			return nil, perr.New(perr.TruncatedInput, "column chunk page body exceeds chunk byte range")
		}

		if header.Type == format.DataPage || header.Type == format.DataPageV2 {
			pageRows := int64(pageRowCount(header))
			if !repeated && rowsSeen+pageRows <= rowStart {
				// Entirely before the requested range and safe to
				// byte-skip: the column has no repeated ancestor, so a
				// page's row count is exactly its value count.
				rowsSeen += pageRows
				offset += pageLen
				continue
			}
		}

		_, page, dictOut, consumed, err := ReadPage(data[offset:], r.node, typ, typeLength, dict, codec)
		if err != nil {
			return nil, err
		}
		if dictOut != nil {
			dict = &Dictionary{Values: dictOut}
		}
		if page != nil {
			pages = append(pages, page)
			rowsSeen += int64(page.NumRows)
		}
		offset += consumed
	}

	return pages, nil
}

// pageRowCount returns a page's declared row count without decoding its
// body: num_values for DATA_PAGE (valid only when the column has no
// repeated ancestor, since only then does 1 value == 1 row), or the
// explicit NumRows field for DATA_PAGE_V2.
func pageRowCount(header *format.PageHeader) int32 {
	switch {
	case header.DataPageHeaderV2 != nil:
		return header.DataPageHeaderV2.NumRows
	case header.DataPageHeader != nil:
		return header.DataPageHeader.NumValues
	default:
		return 0
	}
}
