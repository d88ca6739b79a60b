// Package utils holds the small helpers shared by the network core, the
// training driver and the binaries: elementwise matrix application, random
// fills, one-hot transforms, evaluation and plotting.
package utils

import (
	"math/rand"
)

// ToApply makes a float -> float function into a function to apply to a
// matrix (int, int, float -> float).
func ToApply(f func(float64) float64) func(i, j int, v float64) float64 {
	return func(i, j int, v float64) float64 {
		return f(v)
	}
}

// Fill returns a slice of given length filled with value.
func Fill(length int, value float64) []float64 {
	c := make([]float64, length)
	for i := range c {
		c[i] = value
	}
	return c
}

// FillNorm returns a slice of given length filled with draws from the
// normal distribution of rng.
func FillNorm(rng *rand.Rand, length int, mean, std float64) []float64 {
	a := make([]float64, length)
	for i := range a {
		a[i] = rng.NormFloat64()*std + mean
	}
	return a
}
