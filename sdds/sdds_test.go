package sdds

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	d := NewDataset(4)
	require.NoError(t, d.AppendColumn("x", []float64{1, 2, 3, 4}))
	require.NoError(t, d.AppendColumn("y", []int32{10, 20, 30, 40}))
	require.NoError(t, d.AppendColumn("name", []string{"a", "b", "c", "d"}))
	return d
}

func TestAppendColumn(t *testing.T) {
	d := NewDataset(2)
	if err := d.AppendColumn("f32", []float32{1, 2}); err != nil {
		t.Errorf("float32 column -> %v", err)
	}
	if err := d.AppendColumn("i64", []int64{1, 2}); err != nil {
		t.Errorf("int64 column -> %v", err)
	}
	if err := d.AppendColumn("i16", []int16{1, 2}); err != nil {
		t.Errorf("int16 column -> %v", err)
	}

	err := d.AppendColumn("short", []float64{1})
	if !errors.Is(err, ErrColumnLength) {
		t.Errorf("length mismatch -> %v", err)
	}
	if err := d.AppendColumn("bad", []bool{true, false}); err == nil {
		t.Error("unsupported element type accepted")
	}
}

func TestSelectColumns(t *testing.T) {
	d := testDataset(t)
	if err := d.SelectColumns("y", "x"); err != nil {
		t.Fatalf("SelectColumns -> %v", err)
	}
	err := d.SelectColumns("nope")
	if !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("unknown column -> %v", err)
	}
}

func TestRowFlags(t *testing.T) {
	d := testDataset(t)
	assert.Equal(t, 4, d.CountRowsOfInterest())
	d.SetRowFlag(1, false)
	d.SetRowFlag(3, false)
	assert.Equal(t, 2, d.CountRowsOfInterest())
	d.SetRowFlag(1, true)
	assert.Equal(t, 3, d.CountRowsOfInterest())
}

func TestColumnValues(t *testing.T) {
	d := testDataset(t)
	d.SetRowFlag(2, false)

	vals, err := d.ColumnValues("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 40}, vals)

	_, err = d.ColumnValues("name")
	if !errors.Is(err, ErrNonNumericColumn) {
		t.Errorf("string column -> %v", err)
	}
	_, err = d.ColumnValues("nope")
	if !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("unknown column -> %v", err)
	}
}

func TestMatrixOfRows(t *testing.T) {
	d := testDataset(t)
	require.NoError(t, d.SelectColumns("y", "x"))
	d.SetRowFlag(1, false)

	m, err := d.MatrixOfRows()
	require.NoError(t, err)
	require.Equal(t, 3, m.M)
	require.Equal(t, 2, m.N)

	// Rows 0, 2, 3 in dataset order, columns in selection order (y, x).
	assert.Equal(t, []float64{10, 30, 40}, m.Col[0])
	assert.Equal(t, []float64{1, 3, 4}, m.Col[1])
}

func TestMatrixOfRowsErrors(t *testing.T) {
	var nilD *Dataset
	if _, err := nilD.MatrixOfRows(); !errors.Is(err, ErrNilDataset) {
		t.Errorf("nil dataset -> %v", err)
	}

	d := testDataset(t)
	if _, err := d.MatrixOfRows(); !errors.Is(err, ErrNoColumnsSelected) {
		t.Errorf("empty selection -> %v", err)
	}

	require.NoError(t, d.SelectColumns("x"))
	for i := 0; i < d.NumRows(); i++ {
		d.SetRowFlag(i, false)
	}
	if _, err := d.MatrixOfRows(); !errors.Is(err, ErrNoRowsOfInterest) {
		t.Errorf("no flagged rows -> %v", err)
	}

	d = testDataset(t)
	require.NoError(t, d.SelectColumns("x", "name"))
	if _, err := d.MatrixOfRows(); !errors.Is(err, ErrNonNumericColumn) {
		t.Errorf("string column in selection -> %v", err)
	}
}

func TestReadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.dat")
	body := "1 10\n2 20\n3 30\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	d, err := ReadTable(path, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumRows())

	m, err := d.MatrixOfRows()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, m.Col[0])
	assert.Equal(t, []float64{10, 20, 30}, m.Col[1])
}

func TestReadTableErrors(t *testing.T) {
	if _, err := ReadTable("nope.dat", nil); !errors.Is(err, ErrNoColumnsSelected) {
		t.Errorf("empty names -> %v", err)
	}
	if _, err := ReadTable(filepath.Join(t.TempDir(), "missing.dat"),
		[]string{"x"}); err == nil {
		t.Error("missing file accepted")
	}
}
