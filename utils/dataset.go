package utils

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomBatch generates a synthetic feature batch with one sample per
// column: features rows, batchSize columns, entries uniform in [0,1).
func RandomBatch(rng *rand.Rand, features, batchSize int) *mat.Dense {
	data := make([]float64, features*batchSize)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(features, batchSize, data)
}

// RandomLabels generates batchSize class labels uniform in [0,classes).
func RandomLabels(rng *rand.Rand, classes, batchSize int) []int {
	labels := make([]int, batchSize)
	for i := range labels {
		labels[i] = rng.Intn(classes)
	}
	return labels
}
