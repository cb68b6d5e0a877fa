// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Provide the literal Subset+HConcat determinant used as the reference
//     for the index-view cofactor kernel.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// MustFromRows builds a matrix from a literal or fails the test.
func MustFromRows[T matrix.Element](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// MustFilled allocates an r×c matrix filled with v or fails the test.
func MustFilled[T matrix.Element](t testing.TB, r, c int, v T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFilled(r, c, v)
	require.NoError(t, err)
	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T matrix.Element](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// RequireRows asserts shape and contents of m against want.
func RequireRows[T matrix.Element](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, len(want), m.Rows(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), m.Cols(), "cols")
	}
	require.Equal(t, want, m.ToRows())
}

// referenceDeterminant is the literal cofactor algorithm: for each column j of
// row 0 the minor is built by concatenating the block of rows [1,n) × [0,j)
// with the block of rows [1,n) × [j+1,n), and the expansion accumulates
// (±m[0,j]) * det(minor) from zero.
func referenceDeterminant[T matrix.Number](t testing.TB, m *matrix.Matrix[T]) T {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols(), "square input")
	switch n {
	case 0:
		return 1
	case 1:
		return MustAt(t, m, 0, 0)
	case 2:
		return MustAt(t, m, 0, 0)*MustAt(t, m, 1, 1) - MustAt(t, m, 0, 1)*MustAt(t, m, 1, 0)
	}

	var acc T
	for j := 0; j < n; j++ {
		left, err := m.Subset(1, 0, n, j)
		require.NoError(t, err)
		right, err := m.Subset(1, j+1, n, n)
		require.NoError(t, err)
		remaining, err := left.HConcat(right)
		require.NoError(t, err)

		cur := MustAt(t, m, 0, j)
		if j%2 == 1 {
			cur = -cur
		}
		acc += cur * referenceDeterminant(t, remaining)
	}
	return acc
}

// seq returns an r×c float64 matrix with cells 1, 2, 3, … in row-major order.
func seq(t testing.TB, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.New[float64](r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float64(i*c+j+1)))
		}
	}
	return m
}
