// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Format renders m as rows of fixed-width, fixed-precision numbers so that all
// columns align. Every cell is written as " %*.*f " and every row ends with
// a newline. The width comes from the magnitude of the global extremum:
//
//   - start from the global maximum; when the minimum is negative and either
//     the maximum is negative too or |min|*10 > max, size for the minimum;
//   - one digit per power of ten, plus one for a minus sign, plus the
//     fractional digits and the decimal point.
//
// A negative precision selects DefaultPrecision. A nil or empty matrix
// renders as "".
//
// Integer element types printed with precision 0 use " %*v " so values above
// 2^53 keep every digit. With a positive precision every cell goes through
// float64 and large integers print rounded.
func Format[T Number](m *Matrix[T], precision int) string {
	if m == nil || m.IsEmpty() {
		return ""
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	lo, hi, err := MinMax(m)
	if err != nil {
		return ""
	}
	width := fieldWidth(float64(lo), float64(hi), precision)

	exact := precision == 0 && isIntegral[T]()

	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if exact {
				fmt.Fprintf(&sb, " %*v ", width, v)
				continue
			}
			fmt.Fprintf(&sb, " %*.*f ", width, precision, float64(v))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// isIntegral reports whether T is an integer type: only there does 1/2
// truncate to zero.
func isIntegral[T Number]() bool {
	var half T = 1
	half /= 2
	return half == 0
}

// Print writes Format(m, precision) to w.
func Print[T Number](w io.Writer, m *Matrix[T], precision int) error {
	_, err := io.WriteString(w, Format(m, precision))
	return err
}

// fieldWidth computes the printf width shared by every cell.
func fieldWidth(minVal, maxVal float64, precision int) int {
	if minVal < 0 && (maxVal < 0 || -minVal*10 > maxVal) {
		maxVal = minVal
	}

	absMax := math.Abs(maxVal)
	if math.IsInf(absMax, 0) || math.IsNaN(absMax) {
		absMax = 0 // printf widens the cell for "+Inf"/"NaN" on its own
	}
	width := 1
	for absMax >= 10 {
		absMax /= 10
		width++
	}
	if maxVal < 0 {
		width++ // sign
	}
	if precision > 0 {
		width += precision + 1 // point and fraction
	}

	return width
}
