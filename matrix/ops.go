// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Scale returns a new matrix whose elements are alpha * m[r,c].
// The input is never mutated. Complexity: O(rows*cols).
func Scale[T Number](m *Matrix[T], alpha T) *Matrix[T] {
	res := m.Clone()
	// single flat loop over the backing slice
	for i := range res.data {
		res.data[i] *= alpha
	}

	return res
}

// Mul performs standard matrix multiplication C = A × B.
// A must be (r×n), B must be (n×c); otherwise ErrDimensionMismatch.
// Loop order i→k→j walks both operands row-major; zero A[i,k] entries
// are skipped. Complexity: O(r*n*c) time, O(r*c) memory.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("Mul (%dx%d)x(%dx%d): %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	res, err := New[T](a.rows, b.cols)
	if err != nil {
		return nil, err
	}

	var av T
	for i := 0; i < a.rows; i++ {
		rowA := i * a.cols
		rowR := i * b.cols
		for k := 0; k < a.cols; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB := k * b.cols
			for j := 0; j < b.cols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m * x for a column vector x of length Cols().
// Returns ErrDimensionMismatch on a length mismatch.
// Complexity: O(rows*cols).
func MulVec[T Number](m *Matrix[T], x []T) ([]T, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("MulVec len(x)=%d, cols=%d: %w", len(x), m.cols, ErrDimensionMismatch)
	}
	y := make([]T, m.rows)
	var acc T
	for r := 0; r < m.rows; r++ {
		acc = 0
		base := r * m.cols
		for c := 0; c < m.cols; c++ {
			acc += m.data[base+c] * x[c]
		}
		y[r] = acc
	}

	return y, nil
}
