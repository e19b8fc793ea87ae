// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Single source of truth for the length checks shared by all kernels.
//  - Return tagged sentinels so kernels can wrap once more with their own tag.
//
// Determinism & Performance:
//  - All checks are O(1) (ValidateNonZero is O(n)) and allocate nothing.

package vector

import "fmt"

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameLen ensures a and b have equal length.
// Returns wrapped ErrDimensionMismatch on violation.
func ValidateSameLen(a, b Vector) error {
	if len(a) != len(b) {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameLen: %d != %d", len(a), len(b)),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateLen ensures v has exactly n components.
// Returns wrapped ErrInvalidDimension on violation.
func ValidateLen(v Vector, n int) error {
	if len(v) != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateLen: want %d, got %d", n, len(v)),
			ErrInvalidDimension,
		)
	}

	return nil
}

// ValidateNonZero ensures v has at least one non-zero component, i.e. a
// strictly positive squared magnitude usable as a divisor.
// Complexity: O(n).
func ValidateNonZero(v Vector) error {
	for _, x := range v {
		if x != 0 {
			return nil
		}
	}

	return validatorErrorf("ValidateNonZero", ErrDegenerateInput)
}

// ValidateBinary is the composite used by binary component-wise kernels.
func ValidateBinary(tag string, a, b Vector) error {
	if err := ValidateSameLen(a, b); err != nil {
		return vectorErrorf(tag, err)
	}

	return nil
}
