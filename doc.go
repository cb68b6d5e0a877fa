// Package lvmat is a small, exact-by-default dense matrix library for Go.
//
// What is lvmat?
//
//	A generic, row-major two-dimensional container with:
//		• Bounds-checked access: At, Set, Row, Col and their setters
//		• Block work: Subset, SetSubset, HConcat, VConcat, Transpose, Minor
//		• Element-wise operators: arithmetic, comparisons and boolean logic
//		• Linear algebra: MatMul, NewIdentity, Trace and the cofactor Determinant
//		• Reductions along either axis: Min, Max, Sum, Prod
//
// Why lvmat?
//
//   - One element type per matrix: any integer, any float, or bool
//   - Every failure is a wrapped sentinel error, nothing silently degrades
//   - Integer matrices stay exact; the determinant never leaves the element type
//   - Optional diagnostics through a caller-supplied hclog.Logger
//
// Layout:
//
//	matrix/   - Matrix[T], operators, validators, options and formatting
//	examples/ - runnable programs built on the matrix package
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	det, _ := matrix.Determinant(a) // -2
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
