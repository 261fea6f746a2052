package matrix

import (
	"github.com/sddstools/pseudoinverse/lapack"
)

// backend is the linear algebra service consulted by Mult, Det and Invert.
// It defaults to the gonum implementation. A nil backend routes Mult and Det
// through their pure-Go fallbacks; Invert has no fallback and panics.
var backend lapack.Backend = lapack.Gonum{}

// SetBackend replaces the package backend and returns the previous one.
// Passing nil selects the pure-Go fallback paths. Not safe to call
// concurrently with running computations.
func SetBackend(b lapack.Backend) lapack.Backend {
	old := backend
	backend = b
	return old
}

// DefaultBackend returns the gonum-based backend.
func DefaultBackend() lapack.Backend { return lapack.Gonum{} }
