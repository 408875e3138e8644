package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/cerealpipe/errors"
)

// Row is a single record: a mapping from column name to value.
type Row map[string]any

// String returns the value of col rendered as a string.
func (r Row) String(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", errors.MissingColumn(col)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// Float returns the value of col coerced to float64.
// Accepts float64, int, int64, and numeric strings.
func (r Row) Float(col string) (float64, error) {
	v, ok := r[col]
	if !ok {
		return 0, errors.MissingColumn(col)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, errors.Schema(fmt.Sprintf("column %s is not numeric (got %q)", col, n))
		}
		return f, nil
	default:
		return 0, errors.Schema(fmt.Sprintf("column %s is not numeric (got %T)", col, v))
	}
}

// clone returns a copy of the row.
func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Frame is an ordered tabular dataset.
type Frame struct {
	columns []string
	rows    []Row
}

// New creates a Frame from an ordered column list and rows.
func New(columns []string, rows []Row) *Frame {
	return &Frame{
		columns: append([]string(nil), columns...),
		rows:    rows,
	}
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Row returns the i-th row.
func (f *Frame) Row(i int) Row {
	return f.rows[i]
}

// Rows returns all rows in source order.
func (f *Frame) Rows() []Row {
	return f.rows
}

// HasColumn reports whether the frame contains a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Rename renames a column, preserving its position among the other columns.
// Returns false if the column does not exist.
func (f *Frame) Rename(oldName, newName string) bool {
	idx := -1
	for i, c := range f.columns {
		if c == oldName {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	f.columns[idx] = newName
	for _, row := range f.rows {
		if v, ok := row[oldName]; ok {
			delete(row, oldName)
			row[newName] = v
		}
	}
	return true
}

// MapColumns rewrites every column name through fn, preserving order.
// Row keys are remapped to match.
func (f *Frame) MapColumns(fn func(string) string) {
	renamed := make(map[string]string, len(f.columns))
	for i, c := range f.columns {
		next := fn(c)
		renamed[c] = next
		f.columns[i] = next
	}
	for _, row := range f.rows {
		for old, next := range renamed {
			if old == next {
				continue
			}
			if v, ok := row[old]; ok {
				delete(row, old)
				row[next] = v
			}
		}
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	rows := make([]Row, len(f.rows))
	for i, r := range f.rows {
		rows[i] = r.clone()
	}
	return New(f.columns, rows)
}

// Equal reports whether two frames have identical columns (in order) and
// identical row contents (in order).
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || len(f.columns) != len(other.columns) || len(f.rows) != len(other.rows) {
		return false
	}
	for i, c := range f.columns {
		if other.columns[i] != c {
			return false
		}
	}
	for i, row := range f.rows {
		o := other.rows[i]
		if len(row) != len(o) {
			return false
		}
		for k, v := range row {
			if ov, ok := o[k]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}
