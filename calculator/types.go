// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecalc/vector"
)

// Operands holds the parsed inputs of one evaluation, in prompt order.
type Operands struct {
	Vectors []vector.Vector
	Scalars []float64
}

// Result is either a vector or a scalar.
type Result struct {
	Vector   vector.Vector
	Scalar   float64
	IsScalar bool
}

// Operation is one menu entry.
//
// VectorPrompts are asked first, then ScalarPrompts; Run receives the
// parsed answers in the same order. Heading may contain a single %s which
// is filled with the first scalar operand.
type Operation struct {
	ID            int
	Title         string
	Heading       string
	VectorPrompts []string
	ScalarPrompts []string
	Run           func(in Operands) (Result, error)
}

// heading renders the result heading for in.
func (op Operation) heading(in Operands, prec int) string {
	if strings.Contains(op.Heading, "%s") && len(in.Scalars) > 0 {
		return fmt.Sprintf(op.Heading, FormatScalar(in.Scalars[0], prec))
	}

	return op.Heading
}

// Evaluate checks the operand counts and runs op.
// Errors: ErrOperandCount, or whatever the vector kernel returns.
func Evaluate(op Operation, in Operands) (Result, error) {
	if len(in.Vectors) != len(op.VectorPrompts) || len(in.Scalars) != len(op.ScalarPrompts) {
		return Result{}, calcErrorf(op.Title, fmt.Errorf(
			"%w: want %d vector(s) and %d scalar(s), got %d and %d",
			ErrOperandCount,
			len(op.VectorPrompts), len(op.ScalarPrompts),
			len(in.Vectors), len(in.Scalars),
		))
	}

	return op.Run(in)
}
