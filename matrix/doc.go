// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major, fixed-dimension matrix of
// numeric values with element access, scalar scaling and matrix
// multiplication.
//
// Dimensions are set at construction and never change; the backing
// storage is one flat slice of rows*cols elements for cache
// friendliness. Two access surfaces are offered:
//
//   - Get/Set — unchecked, O(1), the hot path; an out-of-range index
//     is a caller bug and panics via the slice bound check.
//   - At/SetAt — checked, O(1), returning ErrIndexOutOfBounds on
//     invalid indices for callers that prefer errors over contracts.
//
// Errors:
//
//	ErrInvalidDimensions — requested rows or cols not positive.
//	ErrShapeMismatch     — Of given an element count != rows*cols.
//	ErrIndexOutOfBounds  — checked access outside the matrix.
//	ErrDimensionMismatch — Mul operands with incompatible shapes.
//
// The matrix is not safe for concurrent mutation.
package matrix
