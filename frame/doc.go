// Package frame provides the in-memory tabular dataset the pipeline
// operates on.
//
// A Frame is an ordered collection of rows; each row maps a column name to a
// value. Column order and row order are both preserved across transforms;
// row order is the source order and acts as the final tie-break in the
// selector.
//
// Values are either float64 (numeric CSV cells) or string. Row.Float coerces
// numerics stored in any of float64, int, or numeric-string form, returning a
// schema error when a cell cannot be read as a number.
//
//	f, err := frame.ReadCSV(resp.Body)
//	protein, err := f.Row(0).Float("protein")
package frame
