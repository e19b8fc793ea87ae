// SPDX-License-Identifier: MIT

package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates malformed numeric text.
	ErrParse = errors.New("calculator: cannot parse number")

	// ErrInvalidChoice indicates a menu selector outside 0..len(Registry()).
	ErrInvalidChoice = errors.New("calculator: invalid choice")

	// ErrOperandCount indicates Evaluate was called with the wrong number of
	// vector or scalar operands for the operation.
	ErrOperandCount = errors.New("calculator: wrong number of operands")

	// ErrLineTooLong indicates an input line over the session's line cap.
	ErrLineTooLong = errors.New("calculator: input line too long")
)

// calcErrorf wraps an underlying error with the given tag.
func calcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
