package scratchmlp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Forward propagates the input batch x through all layers and returns the
// output of the last layer.
//
// x has one sample per column: dims[0] rows, batchSize columns. For each
// layer l the pass computes z_l = W_l * a_{l-1} + b_l (the bias column is
// broadcast across the batch) and a_l = sigmoid(z_l). The full activation
// and weighted-input sequences are cached on the model for the following
// backward pass; a pending gradient from an earlier iteration is dropped.
//
// The returned matrix is the cached a_L itself, with dims[L] rows and
// batchSize columns.
func (m *Model) Forward(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("forward: nil input: %w", ErrInvalidArgument)
	}
	rows, batchSize := x.Dims()
	if rows != m.dims[0] {
		return nil, fmt.Errorf("forward: input has %d rows, want %d: %w", rows, m.dims[0], ErrShapeMismatch)
	}
	if batchSize == 0 {
		return nil, fmt.Errorf("forward: empty batch: %w", ErrInvalidArgument)
	}

	layers := m.LayerCount()
	activations := make([]*mat.Dense, layers+1)
	weightedInputs := make([]*mat.Dense, layers)

	// copy the input so later caller writes to x cannot skew the backward pass
	activations[0] = mat.DenseCopyOf(x)

	for l := 0; l < layers; l++ {
		z := mat.NewDense(m.dims[l+1], batchSize, nil)
		z.Mul(m.weights[l], activations[l])

		bias := m.biases[l]
		z.Apply(func(i, j int, v float64) float64 {
			return v + bias.At(i, 0)
		}, z)

		weightedInputs[l] = z
		activations[l+1] = sigmoidOf(z)
	}

	m.cache = &forwardCache{
		activations:    activations,
		weightedInputs: weightedInputs,
		batchSize:      batchSize,
	}
	m.grads = nil

	return activations[layers], nil
}
