package lapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Gonum implements Backend on top of gonum's pure-Go LAPACK and BLAS
// kernels. gonum works in row-major order, so every call goes through the
// transpose identity: a column-major m x n buffer with leading dimension ld
// is, byte for byte, a row-major n x m buffer with stride ld. For the SVD
// this swaps the roles of the two factor matrices (A = (A^T)^T means
// U becomes V and vice versa); for GEMM it reverses the operand order
// (C = A*B becomes C^T = B^T * A^T).
type Gonum struct{}

var _ Backend = Gonum{}

// Gesvd runs gonum's Dgesvd on the transpose of a and unpacks the swapped
// factors back into the caller's column-major u and vt buffers.
func (Gonum) Gesvd(jobU, jobVT byte, m, n int, a []float64, lda int,
	s, u []float64, ldu int, vt []float64, ldvt int,
	work []float64, lwork int) int {

	if jobU != 'S' || jobVT != 'S' {
		panic("lapack: only the economy SVD job ('S','S') is supported.")
	}
	if m <= 0 || n <= 0 {
		panic("lapack: non-positive dimension in Gesvd.")
	}
	minDim := min(m, n)

	// a, column-major m x n, reinterpreted as row-major a^T, n x m.
	at := blas64.General{Rows: n, Cols: m, Stride: lda, Data: a}

	// Factor buffers for a^T = u2 * diag(s) * vt2. vt2 (row-major
	// min x m, stride m) is exactly our u (column-major m x min) when
	// ldu == m, so it can be computed in place; u2 always needs a repack
	// because its row-major stride (min) never matches our ldvt.
	u2 := blas64.General{Rows: n, Cols: minDim, Stride: minDim,
		Data: make([]float64, n*minDim)}
	vt2 := blas64.General{Rows: minDim, Cols: m, Stride: m}
	direct := ldu == m
	if direct {
		vt2.Data = u
	} else {
		vt2.Data = make([]float64, minDim*m)
	}

	ok := lapack64.Gesvd(lapack.SVDStore, lapack.SVDStore,
		at, u2, vt2, s[:minDim], work, lwork)
	if lwork == -1 {
		// Workspace query: work[0] holds the optimal size, nothing was
		// computed.
		return 0
	}
	if !ok {
		return 1
	}

	// u2 is V of the transposed problem, i.e. our right singular vectors:
	// vt(k,j) = v(j,k) = u2[j,k].
	for j := 0; j < n; j++ {
		for k := 0; k < minDim; k++ {
			vt[k+j*ldvt] = u2.Data[j*minDim+k]
		}
	}
	if !direct {
		// vt2 row-major (min x m) holds our U column by column.
		for j := 0; j < minDim; j++ {
			for i := 0; i < m; i++ {
				u[i+j*ldu] = vt2.Data[j*m+i]
			}
		}
	}
	return 0
}

// Gemm computes the column-major product by evaluating the transposed
// product in row-major order: C^T = alpha * B^T * A^T + beta * C^T.
func (Gonum) Gemm(m, n, k int, alpha float64, a []float64, lda int,
	b []float64, ldb int, beta float64, c []float64, ldc int) {

	at := blas64.General{Rows: k, Cols: m, Stride: lda, Data: a}
	bt := blas64.General{Rows: n, Cols: k, Stride: ldb, Data: b}
	ct := blas64.General{Rows: n, Cols: m, Stride: ldc, Data: c}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, alpha, bt, at, beta, ct)
}

// Getrf factors the transpose in place, which pivots on columns of the
// original matrix instead of rows. The diagonal magnitudes of the factored
// result are unchanged by transposition; callers that fold in pivot signs
// cannot rely on the row-swap parity matching a column-major dgetrf.
func (Gonum) Getrf(m, n int, a []float64, lda int, ipiv []int) int {
	at := blas64.General{Rows: n, Cols: m, Stride: lda, Data: a}
	ok := lapack64.Getrf(at, ipiv[:min(m, n)])
	if ok {
		return 0
	}
	// LAPACK convention: info is the 1-based index of the first exactly
	// zero diagonal entry of u.
	for i := 0; i < min(m, n); i++ {
		if a[i*lda+i] == 0 {
			return i + 1
		}
	}
	return 1
}
