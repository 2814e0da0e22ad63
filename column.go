package parquet

import (
	"context"

	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/schema"
)

// Column is one column chunk of one row group, ready to be read into pages
// and reassembled into records.
type Column struct {
	file  *File
	node  *schema.Node
	chunk *format.ColumnChunk
}

// Path returns the column's dot-joined schema path.
func (c *Column) Path() string { return c.node.String() }

// Node returns the column's position in the file's schema tree.
func (c *Column) Node() *schema.Node { return c.node }

// ReadPages reads and decodes the chunk's pages up to the one that reaches
// rowEnd, returning them in on-disk order. Pages entirely before rowStart
// are skipped only for non-repeated columns.
func (c *Column) ReadPages(ctx context.Context, rowStart, rowEnd int64) ([]*Page, error) {
	r := NewColumnChunkReader(c.node, c.chunk, c.file.config.Codecs)
	return r.ReadRows(ctx, c.file.src, rowStart, rowEnd)
}

// ReadValues reads [rowStart, rowEnd) and concatenates every page's
// decoded levels and values, the shape RecordAssembler consumes.
func (c *Column) ReadValues(ctx context.Context, rowStart, rowEnd int64) (definitionLevels, repetitionLevels []int32, values []any, err error) {
	pages, err := c.ReadPages(ctx, rowStart, rowEnd)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, p := range pages {
		definitionLevels = append(definitionLevels, p.DefinitionLevels...)
		repetitionLevels = append(repetitionLevels, p.RepetitionLevels...)
		values = append(values, p.Values...)
	}
	return definitionLevels, repetitionLevels, values, nil
}

// ReadRecords reads [rowStart, rowEnd), reassembles the Dremel record
// structure, and applies the column's converted_type conversion to every
// leaf value.
func (c *Column) ReadRecords(ctx context.Context, rowStart, rowEnd int64) ([]any, error) {
	d, r, values, err := c.ReadValues(ctx, rowStart, rowEnd)
	if err != nil {
		return nil, err
	}
	converted := make([]any, len(values))
	for i, v := range values {
		cv, err := ConvertValue(v, c.node.Element)
		if err != nil {
			return nil, err
		}
		converted[i] = cv
	}
	isNullable := !c.node.Required()
	return AssembleRecords(d, r, converted, isNullable, c.node.MaxDefinitionLevel, c.node.MaxRepetitionLevel), nil
}
