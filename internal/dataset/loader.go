package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a parsed CSV file: a header row plus data rows of equal width.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string
}

// ParseError reports a malformed row in a source CSV
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadTable reads a CSV file into a Table. The first row is taken as the
// header. Rows with a field count different from the header surface a
// ParseError; a missing file surfaces the os error unwrapped so callers
// can check os.IsNotExist.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Line: 1, Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, wrapCSVError(path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := &Table{Path: path, Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(path, err)
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// Column returns the index of the named header column, or -1
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func wrapCSVError(path string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Path: path, Line: csvErr.Line, Err: csvErr.Err}
	}
	return fmt.Errorf("reading %s: %w", path, err)
}
