// SPDX-License-Identifier: MIT
// Package: vector
//
// Geometric kernels: Cross, Project, Reflect, Refract, FaceForward.
//
// Division policy:
//   - Project and Reflect divide by the squared magnitude of their second
//     operand. A zero divisor is rejected with ErrDegenerateInput.
//   - Refract never divides; a negative discriminant is total internal
//     reflection and yields the zero vector.

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cross returns the 3D cross product a × b.
// Errors: ErrInvalidDimension unless both operands have length 3.
func Cross(a, b Vector) (Vector, error) {
	va, err := ToVec3(a)
	if err != nil {
		return nil, vectorErrorf(opCross, err)
	}
	vb, err := ToVec3(b)
	if err != nil {
		return nil, vectorErrorf(opCross, err)
	}

	return FromVec3(Cross3(va, vb)), nil
}

// Cross3 is Cross on the fixed-size Vec3 type. It cannot fail.
func Cross3(a, b Vec3) Vec3 {
	return a.Cross(b)
}

// Project returns the projection of a onto b: (a·b / b·b)·b.
// Errors: ErrDimensionMismatch, ErrDegenerateInput when b is the zero vector.
func Project(a, b Vector) (Vector, error) {
	if err := ValidateBinary(opProject, a, b); err != nil {
		return nil, err
	}
	bb, err := squaredMagnitude(b)
	if err != nil {
		return nil, vectorErrorf(opProject, err)
	}

	return Scale(b, floats.Dot(a, b)/bb), nil
}

// Reflect reflects v about normal: v − 2·(v·n / n·n)·n.
// The normal does not need to be unit length.
// Errors: ErrDimensionMismatch, ErrDegenerateInput when normal is the zero vector.
func Reflect(v, normal Vector) (Vector, error) {
	if err := ValidateBinary(opReflect, v, normal); err != nil {
		return nil, err
	}
	nn, err := squaredMagnitude(normal)
	if err != nil {
		return nil, vectorErrorf(opReflect, err)
	}

	s := 2 * floats.Dot(v, normal) / nn
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - s*normal[i]
	}

	return out, nil
}

// Refract refracts the incident vector v through a surface with the given
// normal and ratio of indices of refraction eta.
//
//	k = 1 − eta²·(1 − (v·n)²)
//	k < 0  → zero vector of len(v) (total internal reflection)
//	k ≥ 0  → eta·v − (eta·(v·n) + √k)·n
//
// v and normal are expected to be normalized for a physically meaningful
// result, but this is not enforced.
// Errors: ErrDimensionMismatch.
func Refract(v, normal Vector, eta float64) (Vector, error) {
	if err := ValidateBinary(opRefract, v, normal); err != nil {
		return nil, err
	}

	d := floats.Dot(v, normal)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Zeros(len(v)), nil
	}

	s := eta*d + math.Sqrt(k)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = eta*v[i] - s*normal[i]
	}

	return out, nil
}

// FaceForward orients i against n: it returns a copy of i when n·i < 0 and
// −i otherwise.
//
// The classic GLSL signature also takes a geometric normal Nref; the
// calculator this package backs never consulted it, so it is not part of
// the API.
// Errors: ErrDimensionMismatch.
func FaceForward(n, i Vector) (Vector, error) {
	if err := ValidateBinary(opFaceForward, n, i); err != nil {
		return nil, err
	}
	if floats.Dot(n, i) < 0 {
		return i.Clone(), nil
	}

	return Scale(i, -1), nil
}

// squaredMagnitude returns v·v, rejecting a zero result.
// A result that underflows to zero is rejected as well.
func squaredMagnitude(v Vector) (float64, error) {
	if err := ValidateNonZero(v); err != nil {
		return 0, err
	}
	vv := floats.Dot(v, v)
	if vv == 0 {
		return 0, validatorErrorf("squaredMagnitude", ErrDegenerateInput)
	}

	return vv, nil
}
