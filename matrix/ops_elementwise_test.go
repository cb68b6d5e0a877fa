// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// --- arithmetic ---------------------------------------------------------------

func TestArithmetic_Succeeds(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]int{{6, 5, 4}, {3, 2, 1}})

	tests := []struct {
		name string
		op   func(a, b *matrix.Matrix[int]) (*matrix.Matrix[int], error)
		want [][]int
	}{
		{"Add", matrix.Add[int], [][]int{{7, 7, 7}, {7, 7, 7}}},
		{"Sub", matrix.Sub[int], [][]int{{-5, -3, -1}, {1, 3, 5}}},
		{"MulElem", matrix.MulElem[int], [][]int{{6, 10, 12}, {12, 10, 6}}},
		{"DivElem", matrix.DivElem[int], [][]int{{0, 0, 0}, {1, 2, 6}}},
		{"Hadamard", matrix.Hadamard[int], [][]int{{6, 10, 12}, {12, 10, 6}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(a, b)
			require.NoError(t, err)
			RequireRows(t, tc.want, got)
		})
	}

	// Operands are never mutated.
	RequireRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}, a)
}

func TestArithmetic_ShapeMismatchIsAnError(t *testing.T) {
	t.Parallel()

	a := MustFilled(t, 2, 2, 1.0)
	b := MustFilled(t, 3, 2, 1.0)

	ops := map[string]func(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error){
		"Add":     matrix.Add[float64],
		"Sub":     matrix.Sub[float64],
		"MulElem": matrix.MulElem[float64],
		"DivElem": matrix.DivElem[float64],
	}
	for name, op := range ops {
		got, err := op(a, b)
		require.ErrorIs(t, err, matrix.ErrShapeMismatch, name)
		require.Nil(t, got, "%s must not pass the left operand through", name)

		_, err = op(a, nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)
	}
}

func TestDivElem_ZeroDivisorIsAtomic(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 1}, {0, 1}})

	got, err := matrix.DivElem(a, b)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	require.Nil(t, got)
	require.Contains(t, err.Error(), "(1,0)")

	// Integer division by zero must not panic either.
	ai := MustFromRows(t, [][]int{{1}})
	bi := MustFromRows(t, [][]int{{0}})
	_, err = matrix.DivElem(ai, bi)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

func TestScaleAndDivScalar(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, -2}, {4, 8}})

	got, err := matrix.Scale(m, 0.5)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0.5, -1}, {2, 4}}, got)

	got, err = matrix.DivScalar(m, 2)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0.5, -1}, {2, 4}}, got)

	_, err = matrix.DivScalar(m, 0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	_, err = matrix.Scale[float64](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNegAbs(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]int{{-1, 2}, {0, -4}})

	neg, err := matrix.Neg(m)
	require.NoError(t, err)
	RequireRows(t, [][]int{{1, -2}, {0, 4}}, neg)

	abs, err := matrix.Abs(m)
	require.NoError(t, err)
	RequireRows(t, [][]int{{1, 2}, {0, 4}}, abs)

	f := MustFromRows(t, [][]float64{{-0.5, math.Inf(-1)}})
	absF, err := matrix.Abs(f)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0.5, math.Inf(1)}}, absF)
}

// --- comparisons --------------------------------------------------------------

func TestComparisons(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}})
	b := MustFromRows(t, [][]int{{2, 2, 2}})

	tests := []struct {
		name string
		op   func(a, b *matrix.Matrix[int]) (*matrix.Matrix[bool], error)
		want []bool
	}{
		{"Less", matrix.Less[int], []bool{true, false, false}},
		{"LessEq", matrix.LessEq[int], []bool{true, true, false}},
		{"Greater", matrix.Greater[int], []bool{false, false, true}},
		{"GreaterEq", matrix.GreaterEq[int], []bool{false, true, true}},
		{"Eq", (*matrix.Matrix[int]).Eq, []bool{false, true, false}},
		{"Ne", (*matrix.Matrix[int]).Ne, []bool{true, false, true}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.op(a, b)
			require.NoError(t, err)
			RequireRows(t, [][]bool{tc.want}, got)

			_, err = tc.op(a, MustFilled(t, 2, 3, 0))
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
		})
	}
}

// --- logical ------------------------------------------------------------------

func TestLogical_Truthiness(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{0, 1.5, 0, -2}})
	b := MustFromRows(t, [][]float64{{0, 0, 3, 4}})

	and, err := a.And(b)
	require.NoError(t, err)
	RequireRows(t, [][]bool{{false, false, false, true}}, and)

	or, err := a.Or(b)
	require.NoError(t, err)
	RequireRows(t, [][]bool{{false, true, true, true}}, or)

	RequireRows(t, [][]bool{{true, false, true, false}}, a.Not())

	_, err = a.And(MustFilled(t, 1, 3, 1.0))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = a.Or(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLogical_BoolMatrix(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]bool{{true, false}, {true, true}})
	require.True(t, a.Any())
	require.False(t, a.All())
	RequireRows(t, [][]bool{{false, true}, {false, false}}, a.Not())

	eq, err := a.Eq(a.Not())
	require.NoError(t, err)
	require.False(t, eq.Any())
}

func TestAnyAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		m        *matrix.Matrix[int]
		any, all bool
	}{
		{"all zero", MustFilled(t, 2, 2, 0), false, false},
		{"all set", MustFilled(t, 2, 2, 3), true, true},
		{"mixed", MustFromRows(t, [][]int{{0, 1}}), true, false},
		{"empty 0x0", matrix.Empty[int](), false, true},
		{"empty 0x4", MustFilled(t, 0, 4, 1), false, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.any, tc.m.Any())
			require.Equal(t, tc.all, tc.m.All())
		})
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	require.False(t, matrix.Truthy_TestOnly(0))
	require.True(t, matrix.Truthy_TestOnly(-1))
	require.True(t, matrix.Truthy_TestOnly(math.NaN()), "NaN != 0")
	require.False(t, matrix.Truthy_TestOnly(false))
	require.True(t, matrix.Truthy_TestOnly(uint8(1)))
}
