// Command pgrep is a small inspection tool for Parquet files.
//
// Its goal is a quick, readable look at a file's contents, not a
// byte-for-byte reimplementation of any particular parquet-tools output.
//
//	pgrep schema <path>                 print the file's schema tree
//	pgrep cat [flags] <path>            dump rows to a table
//
// cat flags:
//
//	--columns     comma-separated dot-joined column paths (default: every column)
//	--row-start   first row to read
//	--row-end     row to stop before (default: end of file)
//	--debug       print byte-range requests to stderr
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/goparquet/goparquet/internal/debug"

	"github.com/goparquet/goparquet"
)

func main() {
	if len(os.Args) < 2 {
		perrorf("usage: pgrep <schema|cat> [flags] <path>")
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "schema":
		err = runSchema(os.Args[2:])
	case "cat":
		err = runCat(os.Args[2:])
	default:
		perrorf("unknown command %q (expected schema or cat)", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		perrorf("%s", err)
		os.Exit(1)
	}
}

func runSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: pgrep schema <path>")
	}
	path := fs.Arg(0)

	src, err := parquet.NewFileByteSource(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer closeSource(src, path)

	f, err := parquet.OpenFile(context.Background(), src)
	if err != nil {
		return fmt.Errorf("opening parquet file: %w", err)
	}
	f.Schema().Print(os.Stdout)
	return nil
}

func runCat(args []string) error {
	fs := flag.NewFlagSet("cat", flag.ExitOnError)
	var (
		columns  string
		rowStart int64
		rowEnd   int64
		debugOn  bool
	)
	fs.StringVar(&columns, "columns", "", "comma-separated list of dot-joined column paths (default: every column)")
	fs.Int64Var(&rowStart, "row-start", 0, "first row to read")
	fs.Int64Var(&rowEnd, "row-end", 0, "row to stop before (default: end of file)")
	fs.BoolVar(&debugOn, "debug", false, "print byte-range requests to stderr")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: pgrep cat [flags] <path>")
	}
	path := fs.Arg(0)
	debug.Toggle(debugOn)

	src, err := parquet.NewFileByteSource(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer closeSource(src, path)

	ctx := context.Background()
	opts := []parquet.Option{parquet.WithRowRange(rowStart, rowEnd)}

	var paths []string
	if columns != "" {
		paths = strings.Split(columns, ",")
		opts = append(opts, parquet.WithColumns(paths...))
	}

	f, err := parquet.OpenFile(ctx, src, opts...)
	if err != nil {
		return fmt.Errorf("opening parquet file: %w", err)
	}

	if len(paths) == 0 {
		for _, leaf := range f.Schema().Leaves {
			paths = append(paths, leaf.String())
		}
	}
	sort.Strings(paths)

	rows, err := f.ReadRows(ctx, opts...)
	if err != nil {
		return fmt.Errorf("reading rows: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(paths)

	numRows := 0
	for _, path := range paths {
		if n := len(rows[path]); n > numRows {
			numRows = n
		}
	}
	for i := 0; i < numRows; i++ {
		record := make([]string, len(paths))
		for j, path := range paths {
			col := rows[path]
			if i < len(col) {
				record[j] = fmt.Sprint(col[i])
			}
		}
		table.Append(record)
	}
	table.Render()

	return nil
}

func closeSource(src *parquet.FileByteSource, path string) {
	if err := src.Close(); err != nil {
		perrorf("closing %s: %s", path, err)
	}
}

func perrorf(format string, args ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
