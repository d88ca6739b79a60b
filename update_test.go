package scratchmlp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/denselab/scratchmlp/utils"
)

func TestUpdateWithoutGradients(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	model, err := NewModel([]int{4, 3, 2}, rng)
	require.NoError(t, err)

	require.ErrorIs(t, model.Update(0.5), ErrPrecondition)

	// a forward pass alone is not enough
	_, err = model.Forward(utils.RandomBatch(rng, 4, 5))
	require.NoError(t, err)
	require.ErrorIs(t, model.Update(0.5), ErrPrecondition)
}

func TestUpdateZeroLearningRate(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	model, err := NewModel([]int{4, 3, 2}, rng)
	require.NoError(t, err)

	weights := make([]*mat.Dense, model.LayerCount())
	biases := make([]*mat.Dense, model.LayerCount())
	for l := range weights {
		weights[l] = mat.DenseCopyOf(model.Weights(l))
		biases[l] = mat.DenseCopyOf(model.Biases(l))
	}

	x := utils.RandomBatch(rng, 4, 5)
	labels := utils.RandomLabels(rng, 2, 5)
	y, err := utils.OneHot(labels, 2)
	require.NoError(t, err)

	_, err = model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(y))
	require.NoError(t, model.Update(0))

	for l := range weights {
		require.True(t, mat.Equal(weights[l], model.Weights(l)), "weights %d", l)
		require.True(t, mat.Equal(biases[l], model.Biases(l)), "biases %d", l)
	}
}

func TestUpdateClearsTransientState(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	model, err := NewModel([]int{4, 3, 2}, rng)
	require.NoError(t, err)

	x := utils.RandomBatch(rng, 4, 5)
	labels := utils.RandomLabels(rng, 2, 5)
	y, err := utils.OneHot(labels, 2)
	require.NoError(t, err)

	_, err = model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(y))
	require.NoError(t, model.Update(0.5))

	require.Equal(t, Initialized, model.State())
	require.Nil(t, model.Activations())
	require.Nil(t, model.WeightedInputs())
	require.Nil(t, model.GradWeights(0))
	require.Nil(t, model.GradBiases(0))
}

func TestUpdateAppliesStep(t *testing.T) {
	model, err := NewModel([]int{1, 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	model.Weights(0).Set(0, 0, 0.5)
	model.Biases(0).Set(0, 0, 0.25)

	x := mat.NewDense(1, 1, []float64{2})
	y := mat.NewDense(1, 1, []float64{1})

	_, err = model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(y))

	dw := model.GradWeights(0).At(0, 0)
	db := model.GradBiases(0).At(0, 0)
	require.NoError(t, model.Update(0.5))

	require.InDelta(t, 0.5-0.5*dw, model.Weights(0).At(0, 0), 1e-15)
	require.InDelta(t, 0.25-0.5*db, model.Biases(0).At(0, 0), 1e-15)
}

func TestUpdateMomentumAccumulatesVelocity(t *testing.T) {
	model, err := NewModel([]int{1, 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	model.Weights(0).Set(0, 0, 0.5)
	model.Biases(0).Set(0, 0, 0.25)

	x := mat.NewDense(1, 1, []float64{2})
	y := mat.NewDense(1, 1, []float64{1})

	const learnRate, momentum = 0.1, 0.9

	// first step: velocity is the scaled gradient
	_, err = model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(y))
	g1 := model.GradWeights(0).At(0, 0)
	w0 := model.Weights(0).At(0, 0)
	require.NoError(t, model.UpdateMomentum(learnRate, momentum))

	v := learnRate * g1
	w1 := w0 - v
	require.InDelta(t, w1, model.Weights(0).At(0, 0), 1e-15)

	// second step: the previous velocity decays into the new one
	_, err = model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(y))
	g2 := model.GradWeights(0).At(0, 0)
	require.NoError(t, model.UpdateMomentum(learnRate, momentum))

	v = momentum*v + learnRate*g2
	require.InDelta(t, w1-v, model.Weights(0).At(0, 0), 1e-14)
}

func TestUpdateMomentumOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	model, err := NewModel([]int{4, 3, 2}, rng)
	require.NoError(t, err)

	x := utils.RandomBatch(rng, 4, 5)
	labels := utils.RandomLabels(rng, 2, 5)
	y, err := utils.OneHot(labels, 2)
	require.NoError(t, err)

	_, err = model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(y))

	require.ErrorIs(t, model.UpdateMomentum(0.1, -0.1), ErrInvalidArgument)
	require.ErrorIs(t, model.UpdateMomentum(0.1, 1), ErrInvalidArgument)

	// a rejected update leaves the gradients pending
	require.Equal(t, GradientsComputed, model.State())
}
