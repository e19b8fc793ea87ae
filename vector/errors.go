// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every kernel returns one of these, wrapped with an operation tag, so callers
// match with errors.Is. No kernel panics on user-supplied input.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands whose lengths must match but differ.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidDimension indicates an operand of the wrong fixed dimension,
	// e.g. a Cross operand whose length is not 3.
	ErrInvalidDimension = errors.New("vector: invalid dimension")

	// ErrDegenerateInput indicates a division by a zero-magnitude vector or a
	// zero increment.
	ErrDegenerateInput = errors.New("vector: degenerate input")
)

// Operation tags used as error prefixes.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opDot         = "Dot"
	opCross       = "Cross"
	opProject     = "Project"
	opReflect     = "Reflect"
	opRefract     = "Refract"
	opFaceForward = "FaceForward"
	opDistance    = "Distance"
	opMin         = "Min"
	opMax         = "Max"
	opSnap        = "Snap"
	opClamp       = "Clamp"
)

// vectorErrorf wraps an underlying error with the given tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
