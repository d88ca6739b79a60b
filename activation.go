package scratchmlp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/denselab/scratchmlp/utils"
)

// Sigmoid is the logistic function 1 / (1 + exp(-x)).
// The branch keeps the exp argument non-positive: exp(-x) overflows for
// x < -709, which would collapse the result to 0 instead of a small positive.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// SigmoidDeriv is the derivative of Sigmoid: sigmoid(x) * (1 - sigmoid(x)).
func SigmoidDeriv(x float64) float64 {
	s := Sigmoid(x)
	return s * (1 - s)
}

// sigmoidOf applies Sigmoid elementwise, returning a fresh matrix.
func sigmoidOf(z *mat.Dense) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(utils.ToApply(Sigmoid), z)
	return out
}

// sigmoidDerivOf applies SigmoidDeriv elementwise, returning a fresh matrix.
func sigmoidDerivOf(z *mat.Dense) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(utils.ToApply(SigmoidDeriv), z)
	return out
}
