package parquet

import (
	"context"
	"fmt"

	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/schema"
)

// File is an open Parquet file: its decoded footer metadata and schema
// tree, and the ByteSource rows are read from.
type File struct {
	src    ByteSource
	meta   *format.FileMetaData
	schema *schema.Tree
	config *ReadConfig
}

// OpenFile decodes a Parquet file's footer from src and builds its schema
// tree. It does not read any row group; call
// RowGroups or ReadRows to read data.
func OpenFile(ctx context.Context, src ByteSource, opts ...Option) (*File, error) {
	config := NewReadConfig(opts...)
	if err := config.validate(); err != nil {
		return nil, err
	}

	meta, err := ReadMetadataAsync(ctx, src, config.InitialFetchSize)
	if err != nil {
		return nil, err
	}
	tree, err := schema.Build(meta.Schema)
	if err != nil {
		return nil, err
	}
	return &File{src: src, meta: meta, schema: tree, config: config}, nil
}

// Metadata returns the file's decoded footer metadata.
func (f *File) Metadata() *format.FileMetaData { return f.meta }

// Schema returns the file's schema tree.
func (f *File) Schema() *schema.Tree { return f.schema }

// NumRows returns the total number of rows across every row group.
func (f *File) NumRows() int64 { return f.meta.NumRows }

// RowGroups returns the file's row groups in on-disk order.
func (f *File) RowGroups() []*RowGroup {
	groups := make([]*RowGroup, len(f.meta.RowGroups))
	var rowStart int64
	for i := range f.meta.RowGroups {
		groups[i] = &RowGroup{file: f, meta: &f.meta.RowGroups[i], rowStart: rowStart}
		rowStart += f.meta.RowGroups[i].NumRows
	}
	return groups
}

// ReadRows reads the columns named by config.Columns (every leaf column
// when nil) over the row range [config.RowStart, config.RowEnd), spanning
// row groups as needed, and returns one reassembled record slice per
// column.
//
// The returned map is keyed by column path; each value is the concatenation
// of that column's records across every row group touched by the range.
// Records are decoded whole page by page and are not trimmed to the range:
// pages that straddle RowStart or RowEnd contribute all their rows, and a
// repeated column starts from the first page of each row group touched.
func (f *File) ReadRows(ctx context.Context, opts ...Option) (map[string][]any, error) {
	config := f.config
	if len(opts) > 0 {
		config = NewReadConfig(append(f.optionsFromConfig(), opts...)...)
		if err := config.validate(); err != nil {
			return nil, err
		}
	}

	paths := config.Columns
	if len(paths) == 0 {
		paths = make([]string, len(f.schema.Leaves))
		for i, leaf := range f.schema.Leaves {
			paths[i] = leaf.String()
		}
	}

	rowEnd := config.rowEnd(f.NumRows())
	out := make(map[string][]any, len(paths))

	for _, group := range f.RowGroups() {
		groupStart := group.rowStart
		groupEnd := groupStart + group.NumRows()
		if groupEnd <= config.RowStart || groupStart >= rowEnd {
			continue
		}
		localStart := max64(0, config.RowStart-groupStart)
		localEnd := min64(group.NumRows(), rowEnd-groupStart)

		for _, path := range paths {
			col, err := group.Column(path)
			if err != nil {
				return nil, err
			}
			records, err := col.ReadRecords(ctx, localStart, localEnd)
			if err != nil {
				return nil, fmt.Errorf("parquet: reading column %q: %w", path, err)
			}
			out[path] = append(out[path], records...)
		}
	}

	return out, nil
}

// optionsFromConfig reconstructs an Option slice preserving the file's
// baseline configuration, so that per-call ReadRows options can override
// individual fields without discarding the rest.
func (f *File) optionsFromConfig() []Option {
	return []Option{
		WithColumns(f.config.Columns...),
		WithRowRange(f.config.RowStart, f.config.RowEnd),
		WithCodecs(f.config.Codecs),
		WithInitialFetchSize(f.config.InitialFetchSize),
	}
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
