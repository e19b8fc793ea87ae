// SPDX-License-Identifier: MIT
// Package: vector
//
// Component-wise kernels. Each result component depends only on the input
// components at the same index.

package vector

import "math"

// mapUnary applies f to every component of v into a fresh Vector.
func mapUnary(v Vector, f func(float64) float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = f(x)
	}

	return out
}

// zipBinary applies f pairwise after validating equal lengths.
func zipBinary(tag string, a, b Vector, f func(x, y float64) float64) (Vector, error) {
	if err := ValidateBinary(tag, a, b); err != nil {
		return nil, err
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}

	return out, nil
}

// Abs returns |v[i]| for every component. The result is a vector; use
// Length for the magnitude.
func Abs(v Vector) Vector { return mapUnary(v, math.Abs) }

// Min returns the component-wise minimum of a and b.
func Min(a, b Vector) (Vector, error) { return zipBinary(opMin, a, b, math.Min) }

// Max returns the component-wise maximum of a and b.
func Max(a, b Vector) (Vector, error) { return zipBinary(opMax, a, b, math.Max) }

// Floor rounds every component down.
func Floor(v Vector) Vector { return mapUnary(v, math.Floor) }

// Ceil rounds every component up.
func Ceil(v Vector) Vector { return mapUnary(v, math.Ceil) }

// Snap rounds every component to the nearest multiple of increment.
// Ties go to the even multiple, so Snap({2.5}, 1) is {2}.
// Errors: ErrDegenerateInput when increment is zero.
func Snap(v Vector, increment float64) (Vector, error) {
	if increment == 0 {
		return nil, vectorErrorf(opSnap, validatorErrorf("increment", ErrDegenerateInput))
	}

	return mapUnary(v, func(x float64) float64 {
		return math.RoundToEven(x/increment) * increment
	}), nil
}

// Clamp constrains every v[i] to [lo[i], hi[i]].
//
// The calculator menu lists this operation as "wrap", but it has always
// clamped; there is no modular wrap-around. When lo[i] > hi[i] the upper
// bound wins.
// Errors: ErrDimensionMismatch unless all three lengths match.
func Clamp(v, lo, hi Vector) (Vector, error) {
	if err := ValidateBinary(opClamp, v, lo); err != nil {
		return nil, err
	}
	if err := ValidateBinary(opClamp, v, hi); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = math.Min(math.Max(x, lo[i]), hi[i])
	}

	return out, nil
}

// Sin applies math.Sin (radians) to every component.
func Sin(v Vector) Vector { return mapUnary(v, math.Sin) }

// Cos applies math.Cos (radians) to every component.
func Cos(v Vector) Vector { return mapUnary(v, math.Cos) }

// Tan applies math.Tan (radians) to every component.
func Tan(v Vector) Vector { return mapUnary(v, math.Tan) }
