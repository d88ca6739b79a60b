package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestOneHot(t *testing.T) {
	got, err := OneHot([]int{0, 2, 1}, 3)
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 0, 1,
		0, 1, 0,
	})
	require.True(t, mat.Equal(want, got), "got %v", mat.Formatted(got))
}

func TestOneHotErrors(t *testing.T) {
	_, err := OneHot(nil, 3)
	require.Error(t, err)
	_, err = OneHot([]int{0, 1}, 1)
	require.Error(t, err)
	_, err = OneHot([]int{0, 3}, 3)
	require.Error(t, err)
	_, err = OneHot([]int{-1}, 3)
	require.Error(t, err)
}

func TestClassifyRoundTrip(t *testing.T) {
	labels := []int{4, 0, 2, 2, 1}
	encoded, err := OneHot(labels, 5)
	require.NoError(t, err)
	require.Equal(t, labels, Classify(encoded))
}

func TestClassifyScores(t *testing.T) {
	scores := mat.NewDense(2, 3, []float64{
		0.9, 0.2, 0.4,
		0.1, 0.8, 0.6,
	})
	require.Equal(t, []int{0, 1, 1}, Classify(scores))
}
