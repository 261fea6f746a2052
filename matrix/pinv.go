package matrix

import (
	"fmt"
	"math"
	"strings"
)

// InvertOptions controls which singular values participate in the
// reconstructed pseudo-inverse. The zero value keeps every nonzero singular
// value.
type InvertOptions struct {
	// LargestSingularValues, when positive, keeps only the first (largest)
	// that many singular values.
	LargestSingularValues int

	// SmallestSingularValues, when positive, additionally removes that many
	// of the smallest singular values.
	SmallestSingularValues int

	// MinRatio removes any singular value whose ratio to the largest one
	// falls below it.
	MinRatio float64

	// DeleteVectors lists singular vector indices to remove explicitly,
	// processed in the order given. Out-of-range indices are skipped.
	// Once an index at or beyond the LargestSingularValues cutoff is
	// processed, the remaining entries are not: that region was already
	// removed by the count cap and processing stops there, even if later
	// entries name indices below the cutoff.
	DeleteVectors []int
}

// InvertReport carries the SVD side products of an inversion. The caller
// keeps whichever fields it needs and lets the rest be collected.
type InvertReport struct {
	// SingularValues holds the raw singular values in the descending order
	// the SVD produces. The vector has length N; only the first min(M,N)
	// entries are meaningful, the remainder stay zero.
	SingularValues *Vec

	// UsedValues is a masked copy of SingularValues with removed entries
	// forced to zero.
	UsedValues *Vec

	// NumValues is the length of SingularValues.
	NumValues int

	// NumUsed counts the singular values that contribute to the inverse.
	NumUsed int

	// U holds the min(M,N) left singular vectors (M x min(M,N)).
	U *Mat

	// Vt holds the right singular vectors, transposed (stored N x N; the
	// first min(M,N) rows are meaningful).
	Vt *Mat

	// ConditionNumber is max/min over the used singular values.
	ConditionNumber float64

	// Deleted lists the explicitly deleted indices, space separated, in
	// processing order.
	Deleted string
}

// Invert computes the truncated Moore-Penrose pseudo-inverse of a through
// its singular value decomposition: A+ = V S^-1 U^T, with singular values
// removed by opt treated as zero in S^-1. The input is not modified. The
// result is N x M. Panics if a is nil or empty, or if no backend is
// configured.
func Invert(a *Mat, opt InvertOptions) (*Mat, *InvertReport) {
	return invert(a, nil, opt)
}

// InvertWeighted is Invert with per-row weights: row i of a is scaled by
// weight[i] before the decomposition and column i of the inverse is scaled
// by weight[i] afterwards, which through the transpose relationship undoes
// the row scaling's effect on the solution. weight typically encodes
// per-observation confidence in a weighted least-squares fit. weight may be
// nil, in which case this is identical to Invert.
func InvertWeighted(a *Mat, weight []float64, opt InvertOptions) (*Mat, *InvertReport) {
	return invert(a, weight, opt)
}

func invert(a *Mat, weight []float64, opt InvertOptions) (*Mat, *InvertReport) {
	if backend == nil {
		panic("matrix: inversion is unavailable without a linear algebra backend.")
	}
	if a == nil || a.M <= 0 || a.N <= 0 {
		panic("matrix: invalid matrix provided for Invert.")
	}
	m, n := a.M, a.N
	if weight != nil && len(weight) < m {
		panic("matrix: weight vector shorter than the matrix row count.")
	}

	sValue := NewVec(n)
	sUsed := NewVec(n)
	invS := NewVec(n)
	vt := New(n, n)
	u := New(m, min(m, n))

	// The SVD destroys its input, so it gets a working copy; the weights
	// are applied to the copy as well, leaving the caller's matrix intact.
	b := Copy(a)
	if weight != nil {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				b.Col[j][i] *= weight[i]
			}
		}
	}

	// Economy SVD with the two-call workspace query: the first call with
	// lwork=-1 reports the optimal workspace size in query[0], the second
	// does the work. Skipping the query risks an under-sized workspace.
	lda := max(1, m)
	query := make([]float64, 1)
	backend.Gesvd('S', 'S', m, n, b.Base, lda, sValue.Ve,
		u.Base, m, vt.Base, n, query, -1)
	lwork := int(query[0])
	work := make([]float64, lwork)
	backend.Gesvd('S', 'S', m, n, b.Base, lda, sValue.Ve,
		u.Base, m, vt.Base, n, work, lwork)

	// Singular value selection, in fixed priority order:
	//   1) remove values that are exactly zero
	//   2) remove values below the MinRatio threshold
	//   3) remove values beyond the LargestSingularValues cap
	//   4) remove the SmallestSingularValues smallest values
	//   5) remove explicitly deleted vectors
	// The largest value is always kept and seeds the condition number
	// extrema.
	maxUsed := 0.0
	minUsed := math.MaxFloat64
	invS.Ve[0] = 1 / sValue.Ve[0]
	sUsed.Ve[0] = sValue.Ve[0]
	maxUsed = math.Max(sUsed.Ve[0], maxUsed)
	minUsed = math.Min(sUsed.Ve[0], minUsed)
	nUsed := 1

	for i := 1; i < n; i++ {
		switch {
		case sValue.Ve[i] == 0:
			invS.Ve[i] = 0
		case sValue.Ve[i]/sValue.Ve[0] < opt.MinRatio:
			invS.Ve[i] = 0
			sUsed.Ve[i] = 0
		case opt.LargestSingularValues > 0 && i >= opt.LargestSingularValues:
			invS.Ve[i] = 0
			sUsed.Ve[i] = 0
		case opt.SmallestSingularValues > 0 && i >= n-opt.SmallestSingularValues:
			invS.Ve[i] = 0
			sUsed.Ve[i] = 0
		default:
			invS.Ve[i] = 1 / sValue.Ve[i]
			sUsed.Ve[i] = sValue.Ve[i]
			maxUsed = math.Max(sUsed.Ve[i], maxUsed)
			minUsed = math.Min(sUsed.Ve[i], minUsed)
			nUsed++
		}
	}

	var deleted strings.Builder
	first := true
	for _, idx := range opt.DeleteVectors {
		if idx < 0 || idx >= n {
			continue
		}
		if first {
			fmt.Fprintf(&deleted, "%d", idx)
		} else {
			fmt.Fprintf(&deleted, " %d", idx)
		}
		first = false
		invS.Ve[idx] = 0
		sUsed.Ve[idx] = 0
		// Deletions at or beyond the largest-count cutoff were already
		// zeroed by the cap and never counted as used; stop processing
		// here. Entries after this point in DeleteVectors are dropped.
		if opt.LargestSingularValues > 0 && idx >= opt.LargestSingularValues {
			break
		}
		nUsed--
	}

	// A = U S Vt, so A+ = V S^-1 U^T and (A+)^T = U S^-1 Vt. The diagonal
	// S^-1 is fused into the transpose read of Vt: row k of Vt is scaled by
	// invS[k], giving V S^-1 without materializing the diagonal.
	invT := New(m, n)
	v := New(vt.M, vt.N)
	for i := 0; i < vt.N; i++ {
		for k := 0; k < n; k++ {
			v.Base[i*v.M+k] = vt.Base[i*v.M+k] * invS.Ve[k]
		}
	}
	// Only the first min(U.N, V.M) columns of U and rows of V carry data;
	// the leading dimensions are the full row counts.
	kk := min(u.N, v.M)
	backend.Gemm(u.M, v.N, kk, 1, u.Base, max(1, u.M),
		v.Base, max(1, v.M), 0, invT.Base, u.M)
	inv := Transpose(invT)

	if weight != nil {
		// Rescale column i of the inverse by weight[i].
		for i := 0; i < inv.N; i++ {
			for j := 0; j < inv.M; j++ {
				inv.Col[i][j] *= weight[i]
			}
		}
	}

	report := &InvertReport{
		SingularValues:  sValue,
		UsedValues:      sUsed,
		NumValues:       sValue.Dim,
		NumUsed:         nUsed,
		U:               u,
		Vt:              vt,
		ConditionNumber: maxUsed / minUsed,
		Deleted:         deleted.String(),
	}
	return inv, report
}
