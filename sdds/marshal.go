package sdds

import (
	"fmt"

	"github.com/sddstools/pseudoinverse/matrix"
)

// MatrixOfRows extracts the selected columns over the rows of interest into
// a column-major matrix: element (row, col) of the result lands at flat
// offset row + col*rowCount, ready for the linear algebra backend. Column
// order follows the selection order; row order is dataset order. Every
// selected column must be numeric.
func (d *Dataset) MatrixOfRows() (*matrix.Mat, error) {
	if d == nil {
		return nil, ErrNilDataset
	}
	if len(d.selected) == 0 {
		return nil, ErrNoColumnsSelected
	}
	nRows := d.CountRowsOfInterest()
	if nRows <= 0 {
		return nil, ErrNoRowsOfInterest
	}
	for _, idx := range d.selected {
		if !d.cols[idx].typ.Numeric() {
			return nil, fmt.Errorf("%w: %q", ErrNonNumericColumn, d.cols[idx].name)
		}
	}

	out := matrix.New(nRows, len(d.selected))
	k := 0
	for j := 0; j < d.nRows; j++ {
		if !d.rowFlag[j] {
			continue
		}
		for i, idx := range d.selected {
			v, _ := d.cols[idx].cast(j)
			out.Base[k+i*nRows] = v
		}
		k++
	}
	return out, nil
}
