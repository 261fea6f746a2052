package matrix

import (
	"math/rand"
	"testing"
)

func randomMat(rnd *rand.Rand, m, n int) *Mat {
	a := New(m, n)
	for i := range a.Base {
		a.Base[i] = rnd.Float64()*2 - 1
	}
	return a
}

func matEpsEq(a, b *Mat, eps float64) bool {
	if a.M != b.M || a.N != b.N {
		return false
	}
	for i := range a.Base {
		diff := a.Base[i] - b.Base[i]
		if diff > eps || diff < -eps {
			return false
		}
	}
	return true
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func TestNewLayout(t *testing.T) {
	a := New(3, 2)
	if a.M != 3 || a.N != 2 || len(a.Base) != 6 || len(a.Col) != 2 {
		t.Fatalf("New(3,2) -> M=%d N=%d len(Base)=%d len(Col)=%d",
			a.M, a.N, len(a.Base), len(a.Col))
	}

	// Col[j] must alias Base[j*M:]: writes through one must be visible
	// through the other.
	for j := 0; j < a.N; j++ {
		for i := 0; i < a.M; i++ {
			a.Base[j*a.M+i] = float64(10*j + i)
			if a.Col[j][i] != float64(10*j+i) {
				t.Errorf("Col[%d][%d] does not alias Base[%d]", j, i, j*a.M+i)
			}
			if a.At(i, j) != float64(10*j+i) {
				t.Errorf("At(%d,%d) -> %g", i, j, a.At(i, j))
			}
		}
	}
}

func TestNewDegenerate(t *testing.T) {
	// Zero-sized matrices are legal.
	a := New(0, 0)
	if a.M != 0 || a.N != 0 {
		t.Errorf("New(0,0) -> %dx%d", a.M, a.N)
	}
	b := New(0, 3)
	if len(b.Col) != 3 {
		t.Errorf("New(0,3) -> %d columns", len(b.Col))
	}

	expectPanic(t, "New(-1,2)", func() { New(-1, 2) })
	expectPanic(t, "New(2,-1)", func() { New(2, -1) })
	expectPanic(t, "NewVec(-1)", func() { NewVec(-1) })
}

func TestCopyIndependent(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	a := randomMat(rnd, 4, 3)
	b := Copy(a)
	if !matEpsEq(a, b, 0) {
		t.Fatal("Copy is not elementwise equal")
	}
	b.Col[0][0] += 1
	if a.Col[0][0] == b.Col[0][0] {
		t.Error("Copy shares storage with the original")
	}
	if Copy(nil) != nil {
		t.Error("Copy(nil) != nil")
	}
}

func TestTransposeTwice(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	a := randomMat(rnd, 5, 3)
	at := Transpose(a)
	if at.M != 3 || at.N != 5 {
		t.Fatalf("Transpose shape -> %dx%d", at.M, at.N)
	}
	for i := 0; i < a.M; i++ {
		for j := 0; j < a.N; j++ {
			if a.At(i, j) != at.At(j, i) {
				t.Errorf("transpose mismatch at (%d,%d)", i, j)
			}
		}
	}
	if !matEpsEq(a, Transpose(at), 0) {
		t.Error("double transpose does not reproduce the input")
	}
	if Transpose(nil) != nil {
		t.Error("Transpose(nil) != nil")
	}
}

func TestIdentity(t *testing.T) {
	id := Identity(2, 4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if id.At(i, j) != want {
				t.Errorf("Identity(2,4)[%d,%d] -> %g", i, j, id.At(i, j))
			}
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := randomMat(rnd, 6, 4)
	b := randomMat(rnd, 6, 4)
	back := Sub(Add(a, b), b)
	if !matEpsEq(a, back, 1e-14) {
		t.Error("Sub(Add(a,b),b) does not reproduce a")
	}
}

func TestHadamard(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	a := randomMat(rnd, 3, 3)
	b := randomMat(rnd, 3, 3)
	for i := range b.Base {
		b.Base[i] += 2 // keep divisors away from zero
	}
	prod := HadamardMult(a, b)
	quot := HadamardDivide(prod, b)
	if !matEpsEq(a, quot, 1e-14) {
		t.Error("HadamardDivide(HadamardMult(a,b),b) does not reproduce a")
	}
}

func TestBinaryOpShapeMismatchPanics(t *testing.T) {
	a := New(2, 3)
	b := New(3, 2)
	expectPanic(t, "Add", func() { Add(a, b) })
	expectPanic(t, "Sub", func() { Sub(a, b) })
	expectPanic(t, "HadamardMult", func() { HadamardMult(a, b) })
	expectPanic(t, "HadamardDivide", func() { HadamardDivide(a, b) })
	expectPanic(t, "Add nil", func() { Add(a, nil) })
}

func TestSelfVariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	a := randomMat(rnd, 4, 4)
	b := randomMat(rnd, 4, 4)

	want := Add(a, b)
	got := Copy(a)
	if !AddSelf(got, b) {
		t.Fatal("AddSelf returned false for matching shapes")
	}
	if !matEpsEq(want, got, 0) {
		t.Error("AddSelf result differs from Add")
	}

	want = Sub(a, b)
	got = Copy(a)
	if !SubSelf(got, b) {
		t.Fatal("SubSelf returned false for matching shapes")
	}
	if !matEpsEq(want, got, 0) {
		t.Error("SubSelf result differs from Sub")
	}

	// Mismatched shapes report failure instead of panicking and leave the
	// receiver untouched.
	c := New(2, 2)
	cCopy := Copy(c)
	if AddSelf(c, b) || SubSelf(c, b) || HadamardMultSelf(c, b) ||
		HadamardDivideSelf(c, b) {
		t.Error("self variant accepted mismatched shapes")
	}
	if !matEpsEq(c, cCopy, 0) {
		t.Error("failed self variant modified its receiver")
	}
}
