package sdds

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadTable reads a whitespace-separated numeric text file into a dataset.
// names gives the column names in file order and fixes the number of columns
// read. All rows start flagged and all columns selected.
func ReadTable(path string, names []string) (*Dataset, error) {
	if len(names) == 0 {
		return nil, ErrNoColumnsSelected
	}
	colIdxs := make([]int, len(names))
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(path, colIdxs, nil)
	if err != nil {
		return nil, fmt.Errorf("sdds: reading %s: %w", path, err)
	}

	d := NewDataset(len(cols[0]))
	for i, name := range names {
		if err := d.AppendColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	if err := d.SelectColumns(names...); err != nil {
		return nil, err
	}
	return d, nil
}
