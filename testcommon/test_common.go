// Package testcommon holds helpers shared between the package tests.
package testcommon

import (
	"math"
	"testing"
)

const DefaultTolerance = 1e-5

func WithinTolerance(a float64, b float64, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func AssertFloatNear(t *testing.T, expected float64, actual float64, tolerance float64, name string) {
	t.Helper()
	if !WithinTolerance(expected, actual, tolerance) {
		t.Errorf("%s = %v; want %v (tolerance %v)", name, actual, expected, tolerance)
	}
}

func AssertVectorNear(t *testing.T, expected []float64, actual []float64, tolerance float64) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("vector length %d; want %d", len(actual), len(expected))
		return
	}
	for i := range expected {
		if !WithinTolerance(expected[i], actual[i], tolerance) {
			t.Errorf("vector[%d] = %v; want %v (tolerance %v)", i, actual[i], expected[i], tolerance)
		}
	}
}

func AssertMatrixNear(t *testing.T, expected [][]float64, actual [][]float64, tolerance float64) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("matrix has %d rows; want %d", len(actual), len(expected))
		return
	}
	for y := range expected {
		if len(expected[y]) != len(actual[y]) {
			t.Errorf("matrix row %d has %d columns; want %d", y, len(actual[y]), len(expected[y]))
			return
		}
		for x := range expected[y] {
			if !WithinTolerance(expected[y][x], actual[y][x], tolerance) {
				t.Errorf("matrix[%d][%d] = %v; want %v (tolerance %v)", y, x, actual[y][x], expected[y][x], tolerance)
			}
		}
	}
}
