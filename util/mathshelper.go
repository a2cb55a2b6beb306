package util

import (
	"cmp"
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

func SignedPow[T constraints.Float](base T, exponent T) T {
	if base < 0 {
		return -T(math.Pow(float64(-base), float64(exponent)))
	}
	return T(math.Pow(float64(base), float64(exponent)))
}

func Clamp[T cmp.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

func MakeMatrix2D[T any](a int, b int) [][]T {
	matrix := make([][]T, a)
	for i := range matrix {
		matrix[i] = make([]T, b)
	}
	return matrix
}

func MatrixIdentity[T constraints.Float](n int) [][]T {
	matrix := MakeMatrix2D[T](n, n)
	for i := 0; i < n; i++ {
		matrix[i][i] = 1
	}
	return matrix
}

func TransposeMatrix[T constraints.Float](matrix [][]T) [][]T {
	if len(matrix) == 0 {
		return nil
	}
	transposed := MakeMatrix2D[T](len(matrix[0]), len(matrix))
	for y := range matrix {
		for x := range matrix[y] {
			transposed[x][y] = matrix[y][x]
		}
	}
	return transposed
}

func MatrixVectorMultiply[T constraints.Float](matrix [][]T, vector []T) ([]T, error) {
	if len(matrix) == 0 || len(vector) == 0 {
		return nil, errors.New("matrix and vector must not be empty")
	}
	result := make([]T, len(matrix))
	for y, row := range matrix {
		if len(row) != len(vector) {
			return nil, errors.New("matrix width does not match vector length")
		}
		var sum T
		for x, m := range row {
			sum += m * vector[x]
		}
		result[y] = sum
	}
	return result, nil
}

func MatrixMatrixMultiply[T constraints.Float](left [][]T, right [][]T) ([][]T, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, errors.New("matrices must not be empty")
	}
	inner := len(right)
	result := MakeMatrix2D[T](len(left), len(right[0]))
	for y, row := range left {
		if len(row) != inner {
			return nil, errors.New("matrix dimensions do not match")
		}
		for x := range right[0] {
			var sum T
			for k := 0; k < inner; k++ {
				sum += row[k] * right[k][x]
			}
			result[y][x] = sum
		}
	}
	return result, nil
}

// MatrixMultiply multiplies the given matrices left to right, skipping
// nil entries. Returns the identity-preserving product or an error when
// dimensions do not line up.
func MatrixMultiply[T constraints.Float](matrices ...[][]T) ([][]T, error) {
	var result [][]T
	for _, m := range matrices {
		if m == nil {
			continue
		}
		if result == nil {
			result = m
			continue
		}
		var err error
		result, err = MatrixMatrixMultiply(result, m)
		if err != nil {
			return nil, err
		}
	}
	if result == nil {
		return nil, errors.New("no matrices to multiply")
	}
	return result, nil
}

// InvertMatrix3x3 returns the inverse of a 3x3 matrix, or nil if the
// matrix is singular.
func InvertMatrix3x3[T constraints.Float](matrix [][]T) [][]T {
	if len(matrix) != 3 {
		return nil
	}
	det := matrix[0][0]*(matrix[1][1]*matrix[2][2]-matrix[2][1]*matrix[1][2]) -
		matrix[0][1]*(matrix[1][0]*matrix[2][2]-matrix[1][2]*matrix[2][0]) +
		matrix[0][2]*(matrix[1][0]*matrix[2][1]-matrix[1][1]*matrix[2][0])
	if det == 0 {
		return nil
	}
	invDet := 1 / det

	inverse := MakeMatrix2D[T](3, 3)
	inverse[0][0] = (matrix[1][1]*matrix[2][2] - matrix[2][1]*matrix[1][2]) * invDet
	inverse[0][1] = (matrix[0][2]*matrix[2][1] - matrix[0][1]*matrix[2][2]) * invDet
	inverse[0][2] = (matrix[0][1]*matrix[1][2] - matrix[0][2]*matrix[1][1]) * invDet
	inverse[1][0] = (matrix[1][2]*matrix[2][0] - matrix[1][0]*matrix[2][2]) * invDet
	inverse[1][1] = (matrix[0][0]*matrix[2][2] - matrix[0][2]*matrix[2][0]) * invDet
	inverse[1][2] = (matrix[1][0]*matrix[0][2] - matrix[0][0]*matrix[1][2]) * invDet
	inverse[2][0] = (matrix[1][0]*matrix[2][1] - matrix[2][0]*matrix[1][1]) * invDet
	inverse[2][1] = (matrix[2][0]*matrix[0][1] - matrix[0][0]*matrix[2][1]) * invDet
	inverse[2][2] = (matrix[0][0]*matrix[1][1] - matrix[1][0]*matrix[0][1]) * invDet
	return inverse
}
