/*mat contains small row-major matrix routines built around an explicit LU
decomposition with scaled partial pivoting. The matrix package uses it as the
pure-Go determinant fallback when no LAPACK backend is configured; unlike the
backend path, the elimination here flips the determinant sign on every row
swap, so the returned sign is meaningful.

Everything only works on square matrices because that's all the fallback
needs.
*/
package mat

// Matrix is a row-major matrix of float64 values: element (i,j) of an
// n x n matrix lives at Vals[i*n + j].
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors holds an LU decomposition, the pivot permutation, and the sign
// accumulated from row swaps. Exporting the type lets callers reuse one
// decomposition for several solves.
type LUFactors struct {
	lu       Matrix
	pivot    []int
	d        float64
	singular bool
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("mat: width must be positive.")
	} else if height <= 0 {
		panic("mat: height must be positive.")
	} else if width*height != len(vals) {
		panic("mat: height * width must equal len(vals).")
	}
	return &Matrix{Vals: vals, Width: width, Height: height}
}

// FromColMajor creates a row-major matrix from a column-major buffer where
// element (i,j) lives at base[j*m + i]. The buffer is copied.
func FromColMajor(base []float64, m, n int) *Matrix {
	vals := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			vals[i*n+j] = base[j*m+i]
		}
	}
	return NewMatrix(vals, n, m)
}

// NewLUFactors creates an LUFactors instance of the requested dimension.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)
	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1
	return luf
}

// LU returns the LU decomposition of m.
func (m *Matrix) LU() *LUFactors {
	if m.Width != m.Height {
		panic("mat: m is non-square.")
	}
	luf := NewLUFactors(m.Width)
	m.LUFactorsAt(luf)
	return luf
}

// LUFactorsAt stores the LU decomposition of m into luf. A singular matrix
// does not panic; it marks luf so Determinant returns 0 and the solve
// routines refuse to run.
func (m *Matrix) LUFactorsAt(luf *LUFactors) {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("mat: luf has different dimensions than m.")
	}

	n := m.Width
	scale := make([]float64, n)
	lu := luf.lu.Vals
	luf.d = 1
	luf.singular = false
	copy(lu, m.Vals)

	// Per-row scale factors for the implicit pivot comparison.
	for i := 0; i < n; i++ {
		iOffset := i * n
		rowMax := 0.0
		for j := 0; j < n; j++ {
			tmp := abs(lu[iOffset+j])
			if tmp > rowMax {
				rowMax = tmp
			}
		}
		if rowMax == 0 {
			luf.singular = true
			return
		}
		scale[i] = 1 / rowMax
	}

	for k := 0; k < n; k++ {
		// Search the pivot column for the largest scaled entry.
		pivMax := 0.0
		pivRow := k
		for i := k; i < n; i++ {
			tmp := scale[i] * abs(lu[i*n+k])
			if tmp > pivMax {
				pivMax = tmp
				pivRow = i
			}
		}

		if k != pivRow {
			kOffset, pivOffset := n*k, n*pivRow
			for j := 0; j < n; j++ {
				idx1, idx2 := kOffset+j, pivOffset+j
				lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
			}
			// A row swap flips the determinant sign.
			luf.d = -luf.d
			scale[pivRow] = scale[k]
		}
		luf.pivot[k] = pivRow

		if lu[n*k+k] == 0 {
			luf.singular = true
			return
		}

		kOffset := k * n
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}
}

// Singular reports whether the factored matrix was detected as singular.
func (luf *LUFactors) Singular() bool { return luf.singular }

// Determinant returns the signed determinant from the decomposition: the
// product of the U diagonal times the row-swap parity. Returns 0 for a
// singular matrix.
func (luf *LUFactors) Determinant() float64 {
	if luf.singular {
		return 0
	}
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width
	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}

// Determinant computes the signed determinant of m. Returns 0 for a
// singular matrix.
func (m *Matrix) Determinant() float64 {
	return m.LU().Determinant()
}

// SolveVector solves m * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) {
	n := luf.lu.Width
	if n != len(bs) {
		panic("mat: len(bs) != luf.Width")
	} else if n != len(xs) {
		panic("mat: len(xs) != luf.Width")
	} else if luf.singular {
		panic("mat: cannot solve with a singular decomposition.")
	}

	// m x = b -> (L U) x = b -> L (U x) = b -> L y = b
	ys := xs
	copy(ys, bs)
	lu := luf.lu.Vals

	// Solve L * y = b for y.
	forwardSubst(n, luf.pivot, lu, ys)
	// Solve U * x = y for x.
	backSubst(n, lu, ys, xs)
}

// Solves L * y = b for y.
// y_i = (b_i - sum_j=0^i-1 (alpha_ij y_j)) / alpha_ii
func forwardSubst(n int, pivot []int, lu, ys []float64) {
	nzIdx := 0
	for i := 0; i < n; i++ {
		piv := pivot[i]
		sum := ys[piv]
		ys[piv] = ys[i]

		if nzIdx != 0 {
			iOffset := i * n
			for j := nzIdx - 1; j < i; j++ {
				sum -= lu[iOffset+j] * ys[j]
			}
		} else if sum != 0 {
			nzIdx = i + 1
		}

		ys[i] = sum
	}
}

// Solves U * x = y for x.
// x_i = (y_i - sum_j=i+1^n-1 (beta_ij x_j)) / beta_ii
func backSubst(n int, lu, ys, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := xs[i]
		iOffset := n * i
		for j := i + 1; j < n; j++ {
			sum -= lu[iOffset+j] * xs[j]
		}
		ys[i] = sum / lu[iOffset+i]
	}
}

// SolveMatrix solves m * x = b for x, one column at a time.
//
// x and b may point to the same physical memory.
func (luf *LUFactors) SolveMatrix(b, x *Matrix) {
	n := luf.lu.Width
	if b.Width != b.Height {
		panic("mat: b matrix is non-square.")
	} else if x.Width != x.Height {
		panic("mat: x matrix is non-square.")
	} else if n != b.Width {
		panic("mat: b matrix different size than m matrix.")
	} else if n != x.Width {
		panic("mat: x matrix different size than m matrix.")
	}

	col := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = b.Vals[i*n+j]
		}
		luf.SolveVector(col, col)
		for i := 0; i < n; i++ {
			x.Vals[i*n+j] = col[i]
		}
	}
}

// Invert writes the inverse of the factored matrix into out.
func (luf *LUFactors) Invert(out *Matrix) {
	n := luf.lu.Width
	if out.Width != out.Height {
		panic("mat: out matrix is non-square.")
	} else if n != out.Width {
		panic("mat: out matrix different size than m matrix.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < n; i++ {
		out.Vals[i*n+i] = 1
	}
	luf.SolveMatrix(out, out)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
