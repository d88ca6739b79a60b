package scratchmlp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Loss is half the sum of squared differences between two equal-shaped
// matrices: 0.5 * sum((predicted - target)^2).
func Loss(predicted, target *mat.Dense) (float64, error) {
	if predicted == nil || target == nil {
		return 0, fmt.Errorf("loss: nil operand: %w", ErrInvalidArgument)
	}
	if err := sameShape("loss", predicted, target); err != nil {
		return 0, err
	}
	var diff mat.Dense
	diff.Sub(predicted, target)
	diff.MulElem(&diff, &diff)
	return 0.5 * mat.Sum(&diff), nil
}

// LossGradient is the gradient of Loss with respect to predicted:
// elementwise predicted - target.
func LossGradient(predicted, target *mat.Dense) (*mat.Dense, error) {
	if predicted == nil || target == nil {
		return nil, fmt.Errorf("loss gradient: nil operand: %w", ErrInvalidArgument)
	}
	if err := sameShape("loss gradient", predicted, target); err != nil {
		return nil, err
	}
	r, c := predicted.Dims()
	grad := mat.NewDense(r, c, nil)
	grad.Sub(predicted, target)
	return grad, nil
}
