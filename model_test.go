package scratchmlp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewModelShapes(t *testing.T) {
	for _, dims := range [][]int{
		{2, 2},
		{4, 3, 2},
		{5, 7, 3, 2, 4},
	} {
		model, err := NewModel(dims, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		require.Equal(t, len(dims)-1, model.LayerCount())
		require.Equal(t, dims, model.Dimensions())
		require.Equal(t, Initialized, model.State())

		for l := 0; l < model.LayerCount(); l++ {
			r, c := model.Weights(l).Dims()
			require.Equal(t, dims[l+1], r, "weights %d rows", l)
			require.Equal(t, dims[l], c, "weights %d cols", l)

			r, c = model.Biases(l).Dims()
			require.Equal(t, dims[l+1], r, "biases %d rows", l)
			require.Equal(t, 1, c, "biases %d cols", l)
		}

		require.Nil(t, model.Activations())
		require.Nil(t, model.WeightedInputs())
		require.Nil(t, model.GradWeights(0))
		require.Nil(t, model.GradBiases(0))
	}
}

func TestNewModelInvalidArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, dims := range map[string][]int{
		"nil dimensions": nil,
		"single entry":   {3},
		"zero width":     {0, 2},
		"negative width": {4, -1, 2},
	} {
		_, err := NewModel(dims, rng)
		require.ErrorIs(t, err, ErrInvalidArgument, name)
	}

	_, err := NewModel([]int{4, 2}, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewModelReproducible(t *testing.T) {
	a, err := NewModel([]int{4, 3, 2}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := NewModel([]int{4, 3, 2}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for l := 0; l < a.LayerCount(); l++ {
		require.True(t, mat.Equal(a.Weights(l), b.Weights(l)), "weights %d", l)
		require.True(t, mat.Equal(a.Biases(l), b.Biases(l)), "biases %d", l)
	}
}

func TestDimensionsReturnsCopy(t *testing.T) {
	model, err := NewModel([]int{4, 3, 2}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	dims := model.Dimensions()
	dims[0] = 99
	require.Equal(t, []int{4, 3, 2}, model.Dimensions())
}
