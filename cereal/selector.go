package cereal

import (
	"sort"

	"github.com/kbukum/cerealpipe/errors"
	"github.com/kbukum/cerealpipe/frame"
)

// ranked is one row projected onto the sort keys.
type ranked struct {
	name     string
	protein  float64
	calories float64
}

// HighestProtein returns the name of the cereal with the most protein.
// Ties are broken by fewest calories, then by first occurrence in the
// dataset (the sort is stable). The frame must already be normalized:
// it needs name, protein, and calories columns and at least one row.
func HighestProtein(f *frame.Frame) (string, error) {
	if f == nil || f.Len() == 0 {
		return "", errors.EmptyDataset()
	}
	for _, col := range []string{ColName, ColProtein, ColCalories} {
		if !f.HasColumn(col) {
			return "", errors.MissingColumn(col)
		}
	}

	rows := make([]ranked, f.Len())
	for i := 0; i < f.Len(); i++ {
		row := f.Row(i)
		name, err := row.String(ColName)
		if err != nil {
			return "", err
		}
		protein, err := row.Float(ColProtein)
		if err != nil {
			return "", err
		}
		calories, err := row.Float(ColCalories)
		if err != nil {
			return "", err
		}
		rows[i] = ranked{name: name, protein: protein, calories: calories}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].protein != rows[j].protein {
			return rows[i].protein > rows[j].protein
		}
		// Fewer calories wins a protein tie.
		return rows[i].calories < rows[j].calories
	})

	return rows[0].name, nil
}
