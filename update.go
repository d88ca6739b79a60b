package scratchmlp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Update applies one plain gradient-descent step,
// W_l <- W_l - learningRate * gradW_l and likewise for the biases, then
// drops the forward cache and the gradients, returning the model to its
// minimal shape.
//
// A learningRate of 0 is allowed and leaves the parameters untouched.
func (m *Model) Update(learningRate float64) error {
	return m.UpdateMomentum(learningRate, 0)
}

// UpdateMomentum is Update with classical momentum: per layer,
// v <- momentum*v + learningRate*grad and W <- W - v. The velocity matrices
// live on the model and persist across iterations; with momentum 0 the step
// reduces to the plain rule and no velocity is kept.
func (m *Model) UpdateMomentum(learningRate, momentum float64) error {
	if m.grads == nil {
		return fmt.Errorf("update: no gradients pending: %w", ErrPrecondition)
	}
	if momentum < 0 || momentum >= 1 {
		return fmt.Errorf("update: momentum %v outside [0,1): %w", momentum, ErrInvalidArgument)
	}

	if momentum > 0 && m.velocityW == nil {
		m.velocityW = zerosLike(m.weights)
		m.velocityB = zerosLike(m.biases)
	}

	for l := range m.weights {
		step(m.weights[l], m.grads.weights[l], m.velocityW, l, learningRate, momentum)
		step(m.biases[l], m.grads.biases[l], m.velocityB, l, learningRate, momentum)
	}

	m.cache = nil
	m.grads = nil
	return nil
}

// step moves one parameter matrix against its gradient, through the layer's
// velocity when momentum is on.
func step(param, grad *mat.Dense, velocity []*mat.Dense, l int, learningRate, momentum float64) {
	r, c := grad.Dims()
	scaled := mat.NewDense(r, c, nil)
	scaled.Scale(learningRate, grad)

	if momentum > 0 {
		v := velocity[l]
		v.Scale(momentum, v)
		v.Add(v, scaled)
		param.Sub(param, v)
		return
	}
	param.Sub(param, scaled)
}

func zerosLike(ms []*mat.Dense) []*mat.Dense {
	zs := make([]*mat.Dense, len(ms))
	for i, m := range ms {
		r, c := m.Dims()
		zs[i] = mat.NewDense(r, c, nil)
	}
	return zs
}
