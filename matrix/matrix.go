// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matrix operations.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
	// ErrShapeMismatch indicates an element count that does not fill the matrix exactly.
	ErrShapeMismatch = errors.New("matrix: wrong number of elements for shape")
	// ErrIndexOutOfBounds indicates a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
	// ErrDimensionMismatch indicates operands with incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Number constrains the element types a Matrix can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is a dense row-major matrix with fixed dimensions.
// data holds rows*cols elements; element (r,c) lives at r*cols+c.
type Matrix[T Number] struct {
	rows, cols int
	data       []T
}

// New creates a rows×cols matrix initialized to zeros.
// Returns ErrInvalidDimensions when either dimension is not positive.
// Complexity: O(rows*cols).
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Of creates a rows×cols matrix filled with elems in row-major order.
// Returns ErrShapeMismatch unless len(elems) == rows*cols.
// Complexity: O(rows*cols).
func Of[T Number](rows, cols int, elems ...T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(elems) != rows*cols {
		return nil, ErrShapeMismatch
	}
	copy(m.data, elems)

	return m, nil
}

// Fill creates a rows×cols matrix with every element set to v.
// Complexity: O(rows*cols).
func Fill[T Number](rows, cols int, v T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Size returns rows*cols. Complexity: O(1).
func (m *Matrix[T]) Size() int {
	return len(m.data)
}

// Get returns element (r,c) with no bounds checking — the caller's
// contract, not an error path. Complexity: O(1).
func (m *Matrix[T]) Get(r, c int) T {
	return m.data[r*m.cols+c]
}

// Set assigns element (r,c) with no bounds checking. Complexity: O(1).
func (m *Matrix[T]) Set(r, c int, v T) {
	m.data[r*m.cols+c] = v
}

// indexOf computes the flat index for (r,c) or returns ErrIndexOutOfBounds.
func (m *Matrix[T]) indexOf(r, c int) (int, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}

	return r*m.cols + c, nil
}

// At returns element (r,c) after bounds checking. Complexity: O(1).
func (m *Matrix[T]) At(r, c int) (T, error) {
	idx, err := m.indexOf(r, c)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// SetAt assigns element (r,c) after bounds checking. Complexity: O(1).
func (m *Matrix[T]) SetAt(r, c int, v T) error {
	idx, err := m.indexOf(r, c)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with independent storage.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Swap exchanges the contents of m and o. Complexity: O(1).
func (m *Matrix[T]) Swap(o *Matrix[T]) {
	m.rows, o.rows = o.rows, m.rows
	m.cols, o.cols = o.cols, m.cols
	m.data, o.data = o.data, m.data
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[r*m.cols+c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
