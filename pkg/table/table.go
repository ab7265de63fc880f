package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrMalformed indicates the input could not be parsed as a delimited table.
var ErrMalformed = errors.New("malformed table")

// Column kinds inferred at parse time
const (
	KindNumeric  = "numeric"
	KindText     = "text"
	KindTemporal = "temporal"
)

type Column struct {
	Name string
	Kind string
}

// Table is an in-memory rectangular dataset. Rows hold raw cell strings in
// declaration order; an empty cell is treated as missing. Tables are not
// mutated after parsing.
type Table struct {
	Columns []Column
	Rows    [][]string
}

var temporalLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Parse reads CSV data into a Table. The first record is the header. Rows
// that are empty across all columns are dropped and the remaining rows are
// re-indexed densely. Ragged records, duplicate column names and inputs
// without a header fail with ErrMalformed.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: input has no header row", ErrMalformed)
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	columns := make([]Column, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has an empty name", ErrMalformed, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrMalformed, name)
		}
		seen[name] = true
		columns[i] = Column{Name: name, Kind: KindText}
	}

	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if allEmpty(record) {
			continue
		}
		row := make([]string, len(record))
		for i, cell := range record {
			row[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, row)
	}

	t := &Table{Columns: columns, Rows: rows}
	t.inferKinds()
	return t, nil
}

func allEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (t *Table) inferKinds() {
	for i := range t.Columns {
		numeric, temporal, present := true, true, 0
		for _, row := range t.Rows {
			cell := row[i]
			if cell == "" {
				continue
			}
			present++
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
			}
			if !isTemporal(cell) {
				temporal = false
			}
			if !numeric && !temporal {
				break
			}
		}
		switch {
		case present == 0:
			t.Columns[i].Kind = KindText
		case numeric:
			t.Columns[i].Kind = KindNumeric
		case temporal:
			t.Columns[i].Kind = KindTemporal
		default:
			t.Columns[i].Kind = KindText
		}
	}
}

func isTemporal(s string) bool {
	for _, layout := range temporalLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Head returns up to n leading rows.
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Tail returns up to n trailing rows.
func (t *Table) Tail(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[len(t.Rows)-n:]
}

// DistinctCount counts distinct non-missing values in the column.
func (t *Table) DistinctCount(idx int) int {
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		if row[idx] != "" {
			seen[row[idx]] = true
		}
	}
	return len(seen)
}

// MissingCount counts empty cells in the column.
func (t *Table) MissingCount(idx int) int {
	missing := 0
	for _, row := range t.Rows {
		if row[idx] == "" {
			missing++
		}
	}
	return missing
}

// Floats parses the non-missing cells of a column as float64, skipping
// values that fail to parse.
func (t *Table) Floats(idx int) []float64 {
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row[idx] == "" {
			continue
		}
		if v, err := strconv.ParseFloat(row[idx], 64); err == nil {
			values = append(values, v)
		}
	}
	return values
}

// Records converts rows into name->value maps, the shape clients expect for
// sample data previews.
func (t *Table) Records(rows [][]string) []map[string]string {
	records := make([]map[string]string, len(rows))
	for i, row := range rows {
		record := make(map[string]string, len(t.Columns))
		for j, c := range t.Columns {
			record[c.Name] = row[j]
		}
		records[i] = record
	}
	return records
}
