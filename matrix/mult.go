package matrix

// Mult returns the matrix product a*b. Panics if either operand is nil or
// a.N != b.M. With a backend configured the product is computed by a single
// GEMM call writing directly into the column-major result buffer; without
// one it falls back to opMult.
func Mult(a, b *Mat) *Mat {
	if a == nil || b == nil {
		panic("matrix: nil operand in Mult.")
	}
	if a.N != b.M {
		panic("matrix: a.N != b.M, cannot multiply.")
	}
	if backend == nil {
		return opMult(a, b)
	}
	out := New(a.M, b.N)
	lda := max(1, a.M)
	ldb := max(1, b.M)
	backend.Gemm(a.M, b.N, a.N, 1, a.Base, lda, b.Base, ldb, 0, out.Base, lda)
	return out
}

// opMult is the pure-Go product used when no backend is available. The
// left operand is first transposed into a row-major scratch buffer so the
// inner loop runs along contiguous memory in both operands. Plain O(m*n*p)
// triple loop with no blocking; fine for small matrices only.
func opMult(a, b *Mat) *Mat {
	if a.N != b.M {
		panic("matrix: a.N != b.M, cannot multiply.")
	}
	m, n, p := a.M, b.N, a.N
	out := New(m, n)

	aRow := make([]float64, m*p)
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			aRow[i*p+j] = a.Base[j*m+i]
		}
	}

	for j := 0; j < n; j++ {
		col := out.Col[j]
		for i := 0; i < m; i++ {
			sum := 0.0
			for k := 0; k < p; k++ {
				sum += aRow[i*p+k] * b.Base[k+j*p]
			}
			col[i] = sum
		}
	}
	return out
}
