/*sdds provides a minimal row-oriented tabular dataset in the style of the
self-describing data set format: named typed columns, per-row "of interest"
flags, and an ordered column selection. Its one real job is MatrixOfRows, the
bridge that turns the row-oriented storage into the flat column-major buffer
the matrix package consumes.

This is a boundary package, so problems are reported as errors rather than
panics.
*/
package sdds

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDataset is returned when a method is called on a nil dataset.
	ErrNilDataset = errors.New("sdds: nil dataset")

	// ErrNoColumnsSelected is returned when no columns are selected.
	ErrNoColumnsSelected = errors.New("sdds: no columns selected")

	// ErrNoRowsOfInterest is returned when every row flag is off.
	ErrNoRowsOfInterest = errors.New("sdds: no rows of interest")

	// ErrNonNumericColumn is returned when a selected column cannot be cast
	// to a numeric value.
	ErrNonNumericColumn = errors.New("sdds: column is not numeric")

	// ErrUnknownColumn is returned when a name matches no column.
	ErrUnknownColumn = errors.New("sdds: unknown column")

	// ErrColumnLength is returned when a column's length does not match the
	// dataset's row count.
	ErrColumnLength = errors.New("sdds: column length does not match row count")
)

// Type enumerates the supported column element types, mirroring the numeric
// types of the wire format plus strings.
type Type int

const (
	Double Type = iota
	Float
	Long64
	Long
	Short
	String
)

// Numeric reports whether values of the type can be cast to float64.
func (t Type) Numeric() bool { return t != String }

// column stores one named column. data holds one of []float64, []float32,
// []int64, []int32, []int16 or []string according to typ.
type column struct {
	name string
	typ  Type
	data interface{}
}

func (c *column) length() int {
	switch d := c.data.(type) {
	case []float64:
		return len(d)
	case []float32:
		return len(d)
	case []int64:
		return len(d)
	case []int32:
		return len(d)
	case []int16:
		return len(d)
	case []string:
		return len(d)
	}
	return 0
}

// cast returns the value at row cast to float64. ok is false for string
// columns.
func (c *column) cast(row int) (v float64, ok bool) {
	switch d := c.data.(type) {
	case []float64:
		return d[row], true
	case []float32:
		return float64(d[row]), true
	case []int64:
		return float64(d[row]), true
	case []int32:
		return float64(d[row]), true
	case []int16:
		return float64(d[row]), true
	}
	return 0, false
}

// Dataset is a row-oriented table: a set of equally long columns, a row
// flag array marking the rows of interest, and an ordered list of selected
// columns.
type Dataset struct {
	cols     []column
	rowFlag  []bool
	selected []int
	nRows    int
}

// NewDataset returns an empty dataset with the given row count. All rows
// start flagged as of interest.
func NewDataset(nRows int) *Dataset {
	flags := make([]bool, nRows)
	for i := range flags {
		flags[i] = true
	}
	return &Dataset{rowFlag: flags, nRows: nRows}
}

// NumRows returns the dataset row count.
func (d *Dataset) NumRows() int { return d.nRows }

// AppendColumn adds a named column. values must be one of []float64,
// []float32, []int64, []int32, []int16 or []string with length equal to the
// dataset row count.
func (d *Dataset) AppendColumn(name string, values interface{}) error {
	if d == nil {
		return ErrNilDataset
	}
	var typ Type
	switch values.(type) {
	case []float64:
		typ = Double
	case []float32:
		typ = Float
	case []int64:
		typ = Long64
	case []int32:
		typ = Long
	case []int16:
		typ = Short
	case []string:
		typ = String
	default:
		return fmt.Errorf("sdds: unsupported column type %T", values)
	}
	col := column{name: name, typ: typ, data: values}
	if col.length() != d.nRows {
		return fmt.Errorf("%w: column %q has %d values, dataset has %d rows",
			ErrColumnLength, name, col.length(), d.nRows)
	}
	d.cols = append(d.cols, col)
	return nil
}

func (d *Dataset) columnIndex(name string) (int, error) {
	for i := range d.cols {
		if d.cols[i].name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// SelectColumns sets the ordered column selection used by MatrixOfRows,
// replacing any previous selection.
func (d *Dataset) SelectColumns(names ...string) error {
	if d == nil {
		return ErrNilDataset
	}
	selected := make([]int, len(names))
	for i, name := range names {
		idx, err := d.columnIndex(name)
		if err != nil {
			return err
		}
		selected[i] = idx
	}
	d.selected = selected
	return nil
}

// SetRowFlag marks or unmarks row i as of interest.
func (d *Dataset) SetRowFlag(i int, flag bool) { d.rowFlag[i] = flag }

// CountRowsOfInterest returns the number of flagged rows.
func (d *Dataset) CountRowsOfInterest() int {
	count := 0
	for _, f := range d.rowFlag {
		if f {
			count++
		}
	}
	return count
}

// ColumnValues returns the values of the named numeric column restricted to
// the rows of interest, in row order.
func (d *Dataset) ColumnValues(name string) ([]float64, error) {
	if d == nil {
		return nil, ErrNilDataset
	}
	idx, err := d.columnIndex(name)
	if err != nil {
		return nil, err
	}
	col := &d.cols[idx]
	if !col.typ.Numeric() {
		return nil, fmt.Errorf("%w: %q", ErrNonNumericColumn, name)
	}
	out := make([]float64, 0, d.CountRowsOfInterest())
	for j := 0; j < d.nRows; j++ {
		if !d.rowFlag[j] {
			continue
		}
		v, _ := col.cast(j)
		out = append(out, v)
	}
	return out, nil
}
