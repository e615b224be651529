// Package parsers reads and writes the FamPlex resource tables.
package parsers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column counts of the resource tables.
const (
	EntityColumns       = 4
	RelationshipColumns = 7
	EquivalenceColumns  = 4
	GroundingColumns    = 4
)

// RowError reports a row whose column count does not match its table.
type RowError struct {
	File    string
	Line    int
	Columns int
	Want    int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Line %d in file %s has %d columns, should be %d", e.Line, e.File, e.Columns, e.Want)
}

// Table is a fixed-width file split into usable rows and row problems.
type Table struct {
	Rows   [][]string
	Errors []error
}

// newReader configures a reader for comma-delimited, minimally quoted rows.
// Both CRLF and LF line endings are accepted.
func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// ReadTable reads every row of a table that should have width columns.
// Rows of the wrong width and rows that fail to parse are recorded in
// Table.Errors and excluded from Table.Rows; scanning continues past them.
// Errors carry the physical line in the file, starting at 1. Blank lines
// are rows with no columns.
func ReadTable(r io.Reader, file string, width int) (*Table, error) {
	counter := &lineCounter{r: r}
	reader := newReader(counter)
	table := &Table{}

	blank := func(from, to int) {
		for line := from; line < to; line++ {
			table.Errors = append(table.Errors, &RowError{File: file, Line: line, Want: width})
		}
	}

	lastLine := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				blank(lastLine+1, parseErr.StartLine)
				table.Errors = append(table.Errors, fmt.Errorf("Line %d in file %s could not be parsed: %w", parseErr.StartLine, file, parseErr.Err))
				lastLine = parseErr.Line
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		line, _ := reader.FieldPos(0)
		blank(lastLine+1, line)
		lastLine = recordEnd(reader, record)

		if len(record) != width {
			table.Errors = append(table.Errors, &RowError{File: file, Line: line, Columns: len(record), Want: width})
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	blank(lastLine+1, counter.Lines()+1)

	return table, nil
}

// recordEnd returns the line on which the last read record ends.
func recordEnd(reader *csv.Reader, record []string) int {
	last := len(record) - 1
	line, _ := reader.FieldPos(last)
	return line + strings.Count(record[last], "\n")
}

// lineCounter counts the lines passing through it. A final line without a
// terminator still counts.
type lineCounter struct {
	r     io.Reader
	lines int
	last  byte
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.lines += bytes.Count(p[:n], []byte{'\n'})
		c.last = p[n-1]
	}
	return n, err
}

// Lines returns the number of lines read so far.
func (c *lineCounter) Lines() int {
	if c.last != 0 && c.last != '\n' {
		return c.lines + 1
	}
	return c.lines
}
