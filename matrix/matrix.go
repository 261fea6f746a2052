/*matrix implements the dense column-major matrix and vector types used by
the SVD pseudo-inverse engine, together with the algebra primitives built on
them. Storage matches the BLAS/LAPACK convention: element (i,j) of an m x n
matrix lives at flat offset j*m + i, so buffers can be handed to the backend
without copies.

Shape violations (negative dimensions, mismatched operands) are programmer
errors and panic; only the in-place "self" variants report mismatches with a
false return so callers can fall back to allocation.
*/
package matrix

// Mat is a dense m x n matrix in column-major order. Base owns the flat
// buffer; Col[j] is always the window Base[j*M : (j+1)*M], so Col[j][i] is
// element (i,j). The constructor maintains that aliasing; code that reshapes
// a Mat by hand is on its own.
type Mat struct {
	M, N int
	Base []float64
	Col  [][]float64
}

// Vec is a flat vector of Dim values.
type Vec struct {
	Dim int
	Ve  []float64
}

// New allocates a zeroed m x n matrix. Zero-sized matrices are legal;
// negative dimensions panic.
func New(m, n int) *Mat {
	if m < 0 || n < 0 {
		panic("matrix: negative dimension in New.")
	}
	mat := &Mat{
		M:    m,
		N:    n,
		Base: make([]float64, m*n),
		Col:  make([][]float64, n),
	}
	for j := 0; j < n; j++ {
		mat.Col[j] = mat.Base[j*m : (j+1)*m]
	}
	return mat
}

// NewVec allocates a zeroed vector of the given size. Negative sizes panic.
func NewVec(size int) *Vec {
	if size < 0 {
		panic("matrix: negative size in NewVec.")
	}
	return &Vec{Dim: size, Ve: make([]float64, size)}
}

// At returns element (i,j). Indices are not range checked beyond what the
// slice bounds already enforce.
func (a *Mat) At(i, j int) float64 { return a.Col[j][i] }

// Set assigns element (i,j).
func (a *Mat) Set(i, j int, v float64) { a.Col[j][i] = v }

// Copy returns an independent deep copy of a, or nil if a is nil.
func Copy(a *Mat) *Mat {
	if a == nil {
		return nil
	}
	out := New(a.M, a.N)
	copy(out.Base, a.Base)
	return out
}

// Transpose returns a newly allocated n x m transpose of a, or nil if a is
// nil. There is no in-place variant: the element permutation would alias.
func Transpose(a *Mat) *Mat {
	if a == nil {
		return nil
	}
	out := New(a.N, a.M)
	for i := 0; i < out.N; i++ {
		for j := 0; j < out.M; j++ {
			out.Col[i][j] = a.Col[j][i]
		}
	}
	return out
}

// Identity returns an m x n matrix with ones on the main diagonal and zeros
// elsewhere. Non-square shapes are allowed and give an identity-like fill.
func Identity(m, n int) *Mat {
	out := New(m, n)
	for j := 0; j < n; j++ {
		col := out.Col[j]
		for i := 0; i < m; i++ {
			if i == j {
				col[i] = 1
			}
		}
	}
	return out
}
