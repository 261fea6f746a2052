package matrix

import (
	"fmt"
	"os"

	"github.com/sddstools/pseudoinverse/mat"
)

// Det returns the determinant of a, or 0 if a is not square or the LU
// factorization fails. The backend path multiplies the diagonal of the LU
// factors without folding in the row-swap parity, so its sign is not
// reliable; the pure-Go fallback path does carry the sign. Callers that need
// the sign must run without a backend. Callers also cannot distinguish a
// genuinely zero determinant from a failed computation; both return 0.
func Det(a *Mat) float64 {
	if a == nil || a.M != a.N {
		return 0
	}
	if a.N == 0 {
		return 1
	}
	if backend == nil {
		return detFallback(a)
	}

	b := Copy(a)
	ipiv := make([]int, a.N)
	info := backend.Getrf(a.M, a.N, b.Base, max(1, a.M), ipiv)
	if info < 0 {
		fmt.Fprintf(os.Stderr,
			"Error in LU decomposition, the %d-th argument had an illegal value.\n",
			-info)
		return 0
	} else if info > 0 {
		fmt.Fprintf(os.Stderr,
			"Error in LU decomposition, U(%d) is exactly zero. The factorization has been completed, but the factor U is exactly singular, and division by zero will occur if it is used to solve a system of equations.\n",
			info)
		return 0
	}

	det := 1.0
	for i := 0; i < a.N; i++ {
		det *= b.Col[i][i]
	}
	return det
}

// detFallback copies a into a row-major matrix and runs the pivoting
// Gaussian elimination in the mat package, which flips the determinant sign
// on every row swap.
func detFallback(a *Mat) float64 {
	rm := mat.FromColMajor(a.Base, a.M, a.N)
	return rm.Determinant()
}
