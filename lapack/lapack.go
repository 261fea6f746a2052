/*lapack defines the column-major linear algebra backend used by the matrix
package. The backend exposes exactly the three LAPACK/BLAS entry points the
pseudo-inverse core needs (dgesvd, dgemm, dgetrf) with LAPACK argument shapes:
flat column-major buffers, explicit leading dimensions, and integer status
codes. Keeping this behind an interface means the core is written once and the
numeric kernels can be swapped without touching it.
*/
package lapack

// Backend is a LAPACK-shaped linear algebra service. All buffers are flat
// column-major with explicit leading dimensions.
type Backend interface {
	// Gesvd computes the singular value decomposition a = u * diag(s) * vt.
	// Only the economy job ('S' for both jobU and jobVT) is supported: u gets
	// min(m,n) columns and vt gets min(m,n) rows. a (m x n, leading dimension
	// lda) is destroyed. s receives min(m,n) singular values in descending
	// order.
	//
	// Workspace follows the standard two-call idiom: a first call with
	// lwork == -1 writes the optimal workspace size to work[0] and computes
	// nothing; the second call must supply a work slice at least that long.
	// Skipping the query risks an under-sized workspace.
	//
	// Returns 0 on success, >0 if the bidiagonal reduction failed to
	// converge.
	Gesvd(jobU, jobVT byte, m, n int, a []float64, lda int,
		s, u []float64, ldu int, vt []float64, ldvt int,
		work []float64, lwork int) int

	// Gemm computes c = alpha*a*b + beta*c for column-major a (m x k, lda),
	// b (k x n, ldb) and c (m x n, ldc). No transposition is applied to
	// either operand.
	Gemm(m, n, k int, alpha float64, a []float64, lda int,
		b []float64, ldb int, beta float64, c []float64, ldc int)

	// Getrf computes an in-place LU factorization of the m x n column-major
	// matrix a with partial pivoting. ipiv must have length min(m,n).
	// Returns 0 on success, i > 0 if u(i,i) is exactly zero (the
	// factorization completed but u is singular).
	Getrf(m, n int, a []float64, lda int, ipiv []int) int
}
