// SPDX-License-Identifier: MIT
// Package: vector
//
// Linear kernels: Add, Sub, Scale, Dot, Length, Distance.
// The arithmetic itself is delegated to gonum/floats; this file owns the
// validation and the allocation of fresh results, since floats panics on
// mismatched lengths and writes into caller-provided destinations.

package vector

import "gonum.org/v1/gonum/floats"

// Add returns the component-wise sum a + b.
// Errors: ErrDimensionMismatch if len(a) != len(b).
// Complexity: O(n) time and memory.
func Add(a, b Vector) (Vector, error) {
	if err := ValidateBinary(opAdd, a, b); err != nil {
		return nil, err
	}
	out := make(Vector, len(a))
	floats.AddTo(out, a, b)

	return out, nil
}

// Sub returns the component-wise difference a - b.
// Errors: ErrDimensionMismatch if len(a) != len(b).
// Complexity: O(n) time and memory.
func Sub(a, b Vector) (Vector, error) {
	if err := ValidateBinary(opSub, a, b); err != nil {
		return nil, err
	}
	out := make(Vector, len(a))
	floats.SubTo(out, a, b)

	return out, nil
}

// Scale returns v multiplied by the scalar s. It serves both the
// "scalar multiplication" and the "scale" operations, which are identical.
// Scale is total and never fails.
func Scale(v Vector, s float64) Vector {
	out := make(Vector, len(v))
	floats.ScaleTo(out, s, v)

	return out
}

// Dot returns Σ a[i]*b[i].
// Errors: ErrDimensionMismatch if len(a) != len(b).
func Dot(a, b Vector) (float64, error) {
	if err := ValidateBinary(opDot, a, b); err != nil {
		return 0, err
	}

	return floats.Dot(a, b), nil
}

// Length returns the Euclidean norm of v. The empty vector has length 0.
func Length(v Vector) float64 {
	return floats.Norm(v, 2)
}

// Distance returns the Euclidean distance between a and b.
// Errors: ErrDimensionMismatch if len(a) != len(b).
func Distance(a, b Vector) (float64, error) {
	if err := ValidateBinary(opDistance, a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, 2), nil
}
