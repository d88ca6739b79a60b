package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ComputeAccuracy returns the percentage of positions where the classified
// labels c agree with the true labels y.
func ComputeAccuracy(c []int, y []int) float64 {
	accuracy := 0.
	for i := range y {
		if c[i] == y[i] {
			accuracy++
		}
	}
	return 100 * accuracy / float64(len(y))
}

// PrintTrainStats classifies the score matrix and prints the accuracy
// against the true labels.
func PrintTrainStats(scores *mat.Dense, y []int) {
	classified := Classify(scores)
	accuracy := ComputeAccuracy(classified, y)

	//fmt.Println("classified: ", classified)
	//fmt.Println("y: ", y)
	fmt.Printf("Accuracy: %.2f %%\n", accuracy)
}
