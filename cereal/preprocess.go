package cereal

import (
	"strings"

	"github.com/kbukum/cerealpipe/errors"
	"github.com/kbukum/cerealpipe/frame"
)

// Column names after normalization.
const (
	ColName     = "name"
	ColBrand    = "brand"
	ColProtein  = "protein"
	ColCalories = "calories"
)

// Preprocess normalizes column headers in place: all headers are lowercased
// and a "name" identifier column is guaranteed. When "name" is absent but
// "brand" exists, "brand" is renamed; when both exist, "name" wins and no
// rename happens. Column order is preserved. Idempotent.
func Preprocess(f *frame.Frame) (*frame.Frame, error) {
	f.MapColumns(strings.ToLower)

	if !f.HasColumn(ColName) {
		if !f.Rename(ColBrand, ColName) {
			return nil, errors.Schema("missing required identifier column").
				WithDetail("expected", []string{ColName, ColBrand})
		}
	}
	return f, nil
}
