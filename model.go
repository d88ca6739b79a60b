package scratchmlp

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/denselab/scratchmlp/utils"
)

// State tags which transient data a Model currently carries.
type State int

const (
	// Initialized: weights and biases only, no transient state.
	Initialized State = iota
	// ForwardComputed: activations and weighted inputs are cached.
	ForwardComputed
	// GradientsComputed: the forward cache plus per-layer gradients.
	GradientsComputed
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case ForwardComputed:
		return "forward computed"
	case GradientsComputed:
		return "gradients computed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// forwardCache holds everything recorded during a forward pass.
// activations[0] is a copy of the input batch, activations[l] the output of
// layer l; weightedInputs[l-1] holds z_l, the pre-activation of layer l.
type forwardCache struct {
	activations    []*mat.Dense
	weightedInputs []*mat.Dense
	batchSize      int
}

// gradients holds the per-layer loss gradients produced by a backward pass,
// aligned index-for-index with the weight and bias sequences.
type gradients struct {
	weights []*mat.Dense
	biases  []*mat.Dense
}

// Model is a fully-connected feed-forward network: a sequence of layers,
// each an affine transform followed by the logistic activation.
//
// The permanent fields are the per-layer weights and biases. Forward caches
// activations and weighted inputs on the model, Backward adds gradients, and
// Update consumes all of it, so between iterations the model is back to its
// minimal shape. State reports which stage the model is in.
type Model struct {
	dims    []int
	weights []*mat.Dense // weights[l]: dims[l+1] x dims[l]
	biases  []*mat.Dense // biases[l]:  dims[l+1] x 1

	cache *forwardCache
	grads *gradients

	// momentum state, allocated on first momentum update and kept
	// across iterations
	velocityW []*mat.Dense
	velocityB []*mat.Dense
}

// NewModel builds a network with the given layer widths: dimensions[0] is
// the input width, dimensions[i] for i >= 1 the width of layer i. Weights
// and biases are drawn independently from the standard normal distribution
// of rng, so a fixed seed reproduces the same model.
func NewModel(dimensions []int, rng *rand.Rand) (*Model, error) {
	if len(dimensions) < 2 {
		return nil, fmt.Errorf("new model: need at least 2 dimensions, got %d: %w", len(dimensions), ErrInvalidArgument)
	}
	for i, d := range dimensions {
		if d <= 0 {
			return nil, fmt.Errorf("new model: dimension %d is %d, want positive: %w", i, d, ErrInvalidArgument)
		}
	}
	if rng == nil {
		return nil, fmt.Errorf("new model: nil random source: %w", ErrInvalidArgument)
	}

	layers := len(dimensions) - 1
	weights := make([]*mat.Dense, layers)
	biases := make([]*mat.Dense, layers)
	for l := 0; l < layers; l++ {
		rows, cols := dimensions[l+1], dimensions[l]
		weights[l] = mat.NewDense(rows, cols, utils.FillNorm(rng, rows*cols, 0, 1))
		biases[l] = mat.NewDense(rows, 1, utils.FillNorm(rng, rows, 0, 1))
	}

	dims := make([]int, len(dimensions))
	copy(dims, dimensions)

	return &Model{dims: dims, weights: weights, biases: biases}, nil
}

// LayerCount is the number of weight/bias layers, excluding the input layer.
func (m *Model) LayerCount() int {
	return len(m.weights)
}

// Dimensions returns a copy of the layer width sequence.
func (m *Model) Dimensions() []int {
	dims := make([]int, len(m.dims))
	copy(dims, m.dims)
	return dims
}

// State reports which transient data the model currently carries.
func (m *Model) State() State {
	switch {
	case m.grads != nil:
		return GradientsComputed
	case m.cache != nil:
		return ForwardComputed
	}
	return Initialized
}

// Weights returns the live weight matrix of layer l (0-indexed), not a copy.
func (m *Model) Weights(l int) *mat.Dense {
	return m.weights[l]
}

// Biases returns the live bias column of layer l (0-indexed), not a copy.
func (m *Model) Biases(l int) *mat.Dense {
	return m.biases[l]
}

// Activations returns the cached activation sequence a_0..a_L, or nil if no
// forward pass is pending. a_0 is the input batch.
func (m *Model) Activations() []*mat.Dense {
	if m.cache == nil {
		return nil
	}
	return m.cache.activations
}

// WeightedInputs returns the cached pre-activation sequence z_1..z_L, or nil
// if no forward pass is pending.
func (m *Model) WeightedInputs() []*mat.Dense {
	if m.cache == nil {
		return nil
	}
	return m.cache.weightedInputs
}

// GradWeights returns the weight gradient of layer l, or nil if no backward
// pass is pending.
func (m *Model) GradWeights(l int) *mat.Dense {
	if m.grads == nil {
		return nil
	}
	return m.grads.weights[l]
}

// GradBiases returns the bias gradient of layer l, or nil if no backward
// pass is pending.
func (m *Model) GradBiases(l int) *mat.Dense {
	if m.grads == nil {
		return nil
	}
	return m.grads.biases[l]
}
