// SPDX-License-Identifier: MIT

package calculator

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/vecalc/vector"
)

// FormatScalar renders x. A negative prec selects the shortest text that
// parses back to x; otherwise x is printed with prec fractional digits.
func FormatScalar(x float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strconv.FormatFloat(x, 'f', prec, 64)
}

// FormatVector renders v as "[a, b, c]" using FormatScalar per component.
func FormatVector(v vector.Vector, prec int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatScalar(x, prec))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Format renders r with FormatVector or FormatScalar depending on its kind.
func (r Result) Format(prec int) string {
	if r.IsScalar {
		return FormatScalar(r.Scalar, prec)
	}

	return FormatVector(r.Vector, prec)
}
