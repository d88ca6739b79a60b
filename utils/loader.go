package utils

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// LoadDense reads a whitespace-separated text file into a matrix, one row
// per line. Every line must carry the same number of values.
func LoadDense(fname string) (*mat.Dense, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("load dense: %w", err)
	}
	defer file.Close()

	var data []float64
	rows, cols := 0, 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("load dense: line %d has %d values, want %d", rows+1, len(fields), cols)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("load dense: line %d: %w", rows+1, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load dense: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("load dense: %s holds no values", fname)
	}
	return mat.NewDense(rows, cols, data), nil
}

// LoadLabels reads one integer class label per line.
func LoadLabels(fname string) ([]int, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	defer file.Close()

	var labels []int
	line := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		label, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("load labels: line %d: %w", line, err)
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	return labels, nil
}
