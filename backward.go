package scratchmlp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/denselab/scratchmlp/utils"
)

// Backward computes the loss gradients for every layer by reverse-mode
// accumulation of the chain rule, given the target batch y.
//
// It requires the cache of a prior Forward call with the same batch size.
// Starting from the output-layer error
//
//	delta_L = (a_L - y) .* sigmoid'(z_L)
//
// it walks from layer L down to 1, recording for each layer the bias
// gradient (the row sums of delta over the batch) and the weight gradient
// delta_l * a_{l-1}^T, then propagates delta_{l-1} = W_l^T * delta_l .*
// sigmoid'(z_{l-1}). The gradients are stored aligned index-for-index with
// the weight and bias sequences.
func (m *Model) Backward(y *mat.Dense) error {
	if m.cache == nil {
		return fmt.Errorf("backward: no forward pass pending: %w", ErrPrecondition)
	}
	if y == nil {
		return fmt.Errorf("backward: nil target: %w", ErrInvalidArgument)
	}

	layers := m.LayerCount()
	output := m.cache.activations[layers]
	if err := sameShape("backward: target against output", y, output); err != nil {
		return err
	}

	gradWeights := make([]*mat.Dense, layers)
	gradBiases := make([]*mat.Dense, layers)

	// output-layer error term
	delta := mat.NewDense(m.dims[layers], m.cache.batchSize, nil)
	delta.Sub(output, y)
	delta.MulElem(delta, sigmoidDerivOf(m.cache.weightedInputs[layers-1]))

	for l := layers - 1; l >= 0; l-- {
		prev := m.cache.activations[l]

		gw := mat.NewDense(m.dims[l+1], m.dims[l], nil)
		gw.Mul(delta, prev.T())
		gradWeights[l] = gw
		gradBiases[l] = rowSums(delta)

		if l > 0 {
			next := mat.NewDense(m.dims[l], m.cache.batchSize, nil)
			next.Mul(m.weights[l].T(), delta)
			next.MulElem(next, sigmoidDerivOf(m.cache.weightedInputs[l-1]))
			delta = next
		}
	}

	m.grads = &gradients{weights: gradWeights, biases: gradBiases}
	return nil
}

// rowSums collapses the batch dimension: d * ones(batchSize, 1).
func rowSums(d *mat.Dense) *mat.Dense {
	rows, cols := d.Dims()
	ones := mat.NewDense(cols, 1, utils.Fill(cols, 1))
	out := mat.NewDense(rows, 1, nil)
	out.Mul(d, ones)
	return out
}
