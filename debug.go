package scratchmlp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FormatDense renders a matrix with aligned columns for debug output, large
// matrices cut down to a 3x3 excerpt.
func FormatDense(m *mat.Dense) fmt.Formatter {
	return mat.Formatted(m, mat.Prefix(" "), mat.Excerpt(3))
}
