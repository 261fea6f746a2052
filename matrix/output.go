package matrix

import (
	"fmt"
	"io"
)

// Fprint writes a column-per-line dump of the matrix, matching the layout
// the buffers are stored in. Intended for reports and debugging.
func Fprint(w io.Writer, a *Mat) {
	fmt.Fprintf(w, "Matrix: %d by %d\n", a.M, a.N)
	for j := 0; j < a.N; j++ {
		fmt.Fprintf(w, "column %d: ", j)
		for i := 0; i < a.M; i++ {
			fmt.Fprintf(w, "%14.9g ", a.Col[j][i])
		}
		fmt.Fprintln(w)
	}
}
