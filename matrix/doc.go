// Package matrix offers a generic, dense, row-major two-dimensional matrix.
//
// The matrix package provides:
//
//   - Matrix[T] over any integer, floating-point or boolean element type,
//     with bounds-checked access (At/Set/Row/Col), block extraction and
//     insertion (Subset/SetSubset) and concatenation (HConcat/VConcat).
//   - The element-wise operator family: Add, Sub, MulElem, DivElem, Scale,
//     DivScalar, Neg, Abs, comparisons producing *Matrix[bool] masks, and the
//     truthiness-based Not/And/Or/Any/All.
//   - Linear algebra: MatMul, Transpose, Minor and the reference cofactor
//     Determinant.
//   - Column/row reductions: Min, Max, Sum, Prod.
//
// Every fallible operation returns an error wrapping one of the sentinels in
// errors.go; nothing silently returns an operand or a zero value on invalid
// input, and nothing panics on user input. A nil *Matrix is reported as
// ErrNilMatrix by every method with an error result; the shape queries and
// Any/All treat it as empty. The remaining copy-returning methods (Clone, Pos,
// ToRows, Transpose, Not) require a non-nil receiver.
//
// Determinant conventions: a non-square matrix is an error (ErrNotSquare) and
// the 0×0 determinant is 1 (empty product). The cofactor expansion is O(n!);
// bound it with WithCofactorLimit.
//
// See the examples in this package for usage patterns.
package matrix
