package parquet

import (
	"fmt"

	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/schema"
)

// RowGroup is one row group of an open file: the slice of a file's rows
// held together on disk, read one column chunk at a time.
type RowGroup struct {
	file *File
	meta *format.RowGroup
	// rowStart is this row group's first row number within the file.
	rowStart int64
}

// NumRows returns the number of rows in this row group.
func (g *RowGroup) NumRows() int64 { return g.meta.NumRows }

// Column resolves a column by its dot-joined schema path within this row
// group, returning an error if no such leaf column exists or the row group
// has no chunk for it.
func (g *RowGroup) Column(path string) (*Column, error) {
	node, ok := g.file.schema.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("parquet: column %q not found in schema", path)
	}
	leafIndex, err := leafIndexOf(g.file.schema, node)
	if err != nil {
		return nil, err
	}
	if leafIndex >= len(g.meta.Columns) {
		return nil, fmt.Errorf("parquet: row group has no chunk for column %q", path)
	}
	return &Column{
		file:  g.file,
		node:  node,
		chunk: &g.meta.Columns[leafIndex],
	}, nil
}

// leafIndexOf returns node's position among the tree's leaves, which is
// also its column-chunk index within a row group: leaves are listed in
// depth-first (write) order, which is also column-chunk order within a
// row group.
func leafIndexOf(t *schema.Tree, node *schema.Node) (int, error) {
	for i, leaf := range t.Leaves {
		if leaf == node {
			return i, nil
		}
	}
	return 0, fmt.Errorf("parquet: %q is not a leaf column", node)
}
