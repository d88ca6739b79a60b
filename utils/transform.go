package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// OneHot transforms class labels into a one-hot matrix with one sample per
// column: classes rows, len(labels) columns, a single 1 per column in the
// label's row.
func OneHot(labels []int, classes int) (*mat.Dense, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("one hot: empty label slice")
	}
	if classes < 2 {
		return nil, fmt.Errorf("one hot: %d classes, want at least 2", classes)
	}
	res := mat.NewDense(classes, len(labels), nil)
	for j, label := range labels {
		if label < 0 || label >= classes {
			return nil, fmt.Errorf("one hot: label %d out of range [0,%d)", label, classes)
		}
		res.Set(label, j, 1)
	}
	return res, nil
}

// Classify is the inverse of OneHot on real-valued scores: for each column
// of the score matrix it returns the row index holding the largest value.
func Classify(scores *mat.Dense) []int {
	rows, cols := scores.Dims()
	labels := make([]int, cols)
	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, scores)
		labels[j] = floats.MaxIdx(column)
	}
	return labels
}
