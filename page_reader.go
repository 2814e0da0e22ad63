package parquet

import (
	"github.com/goparquet/goparquet/compress"
	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/internal/perr"
	"github.com/goparquet/goparquet/schema"
)

// ReadPage decodes one page (DATA_PAGE, DATA_PAGE_V2, or DICTIONARY_PAGE) at
// the front of data. It returns the page header, the decoded data
// page (nil for a dictionary page), the decoded dictionary (nil unless this
// was a dictionary page), and the number of input bytes consumed
// (header + compressed body).
func ReadPage(data []byte, node *schema.Node, typ format.Type, typeLength int, dict *Dictionary, codec compress.Codec) (*format.PageHeader, *Page, []any, int, error) {
	header, headerLen, err := decodePageHeader(data)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	bodyEnd := headerLen + int(header.CompressedPageSize)
	if bodyEnd > len(data) {
		return nil, nil, nil, 0, perr.New(perr.TruncatedInput, "page body of %d bytes exceeds available %d bytes", header.CompressedPageSize, len(data)-headerLen)
	}
	body := data[headerLen:bodyEnd]
	consumed := bodyEnd

	switch header.Type {
	case format.DataPageV2:
		if header.DataPageHeaderV2 == nil {
			return nil, nil, nil, 0, perr.New(perr.InternalInvariant, "DATA_PAGE_V2 header missing its type-specific fields")
		}
		page, err := readDataPageV2(body, header.DataPageHeaderV2, int(header.UncompressedPageSize), node, typ, typeLength, dict, codec)
		if err != nil {
			return nil, nil, nil, 0, err
		}
		return header, page, nil, consumed, nil

	case format.DataPage:
		if header.DataPageHeader == nil {
			return nil, nil, nil, 0, perr.New(perr.InternalInvariant, "DATA_PAGE header missing its type-specific fields")
		}
		if codec != nil {
			body, err = codec.Decode(nil, body, int(header.UncompressedPageSize))
			if err != nil {
				return nil, nil, nil, 0, err
			}
			if len(body) != int(header.UncompressedPageSize) {
				return nil, nil, nil, 0, perr.New(perr.DecompressionSizeMismatch, "page decompressed to %d bytes, expected %d", len(body), header.UncompressedPageSize)
			}
		}
		page, err := readDataPageV1(body, header.DataPageHeader, node, typ, typeLength, dict)
		if err != nil {
			return nil, nil, nil, 0, err
		}
		return header, page, nil, consumed, nil

	case format.DictionaryPage:
		if header.DictionaryPageHeader == nil {
			return nil, nil, nil, 0, perr.New(perr.InternalInvariant, "DICTIONARY_PAGE header missing its type-specific fields")
		}
		if codec != nil {
			var err error
			body, err = codec.Decode(nil, body, int(header.UncompressedPageSize))
			if err != nil {
				return nil, nil, nil, 0, err
			}
			if len(body) != int(header.UncompressedPageSize) {
				return nil, nil, nil, 0, perr.New(perr.DecompressionSizeMismatch, "page decompressed to %d bytes, expected %d", len(body), header.UncompressedPageSize)
			}
		}
		values, err := readDictionaryPage(body, header.DictionaryPageHeader, typ, typeLength)
		if err != nil {
			return nil, nil, nil, 0, err
		}
		return header, nil, values, consumed, nil

	default:
		return nil, nil, nil, 0, perr.New(perr.InternalInvariant, "INDEX_PAGE is not a data-bearing page type")
	}
}
