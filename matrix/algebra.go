package matrix

// sameShape reports whether the two operand shapes match elementwise ops.
func sameShape(a, b *Mat) bool {
	return a.M == b.M && a.N == b.N
}

// Add returns a + b. Panics if either operand is nil or the shapes differ.
func Add(a, b *Mat) *Mat {
	if a == nil || b == nil {
		panic("matrix: nil operand in Add.")
	}
	if !sameShape(a, b) {
		panic("matrix: operand shapes do not match in Add.")
	}
	out := New(a.M, a.N)
	for i := range out.Base {
		out.Base[i] = a.Base[i] + b.Base[i]
	}
	return out
}

// AddSelf adds b into a in place, avoiding an allocation. Returns false on
// shape mismatch instead of panicking.
func AddSelf(a, b *Mat) bool {
	if a == nil || b == nil || !sameShape(a, b) {
		return false
	}
	for i := range a.Base {
		a.Base[i] += b.Base[i]
	}
	return true
}

// Sub returns a - b. Panics if either operand is nil or the shapes differ.
func Sub(a, b *Mat) *Mat {
	if a == nil || b == nil {
		panic("matrix: nil operand in Sub.")
	}
	if !sameShape(a, b) {
		panic("matrix: operand shapes do not match in Sub.")
	}
	out := New(a.M, a.N)
	for i := range out.Base {
		out.Base[i] = a.Base[i] - b.Base[i]
	}
	return out
}

// SubSelf subtracts b from a in place. Returns false on shape mismatch.
func SubSelf(a, b *Mat) bool {
	if a == nil || b == nil || !sameShape(a, b) {
		return false
	}
	for i := range a.Base {
		a.Base[i] -= b.Base[i]
	}
	return true
}

// HadamardMult returns the elementwise product of a and b. Panics if either
// operand is nil or the shapes differ.
func HadamardMult(a, b *Mat) *Mat {
	if a == nil || b == nil {
		panic("matrix: nil operand in HadamardMult.")
	}
	if !sameShape(a, b) {
		panic("matrix: operand shapes do not match in HadamardMult.")
	}
	out := New(a.M, a.N)
	for i := range out.Base {
		out.Base[i] = a.Base[i] * b.Base[i]
	}
	return out
}

// HadamardMultSelf multiplies a by b elementwise in place. Returns false on
// shape mismatch.
func HadamardMultSelf(a, b *Mat) bool {
	if a == nil || b == nil || !sameShape(a, b) {
		return false
	}
	for i := range a.Base {
		a.Base[i] *= b.Base[i]
	}
	return true
}

// HadamardDivide returns the elementwise quotient a / b. Division by zero
// follows float64 semantics. Panics if either operand is nil or the shapes
// differ.
func HadamardDivide(a, b *Mat) *Mat {
	if a == nil || b == nil {
		panic("matrix: nil operand in HadamardDivide.")
	}
	if !sameShape(a, b) {
		panic("matrix: operand shapes do not match in HadamardDivide.")
	}
	out := New(a.M, a.N)
	for i := range out.Base {
		out.Base[i] = a.Base[i] / b.Base[i]
	}
	return out
}

// HadamardDivideSelf divides a by b elementwise in place. Returns false on
// shape mismatch.
func HadamardDivideSelf(a, b *Mat) bool {
	if a == nil || b == nil || !sameShape(a, b) {
		return false
	}
	for i := range a.Base {
		a.Base[i] /= b.Base[i]
	}
	return true
}
