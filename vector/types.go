// SPDX-License-Identifier: MIT

package vector

import "github.com/go-gl/mathgl/mgl64"

// Vector is an ordered, fixed-length sequence of real numbers.
// Its dimension is len(v). Kernels treat a Vector as immutable.
type Vector []float64

// Vec3 is the fixed-size 3D vector used where the dimension is known at
// compile time.
type Vec3 = mgl64.Vec3

// Len returns the dimension of v.
func (v Vector) Len() int { return len(v) }

// Clone returns a copy of v that shares no storage with it.
// A nil Vector clones to an empty, non-nil Vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Zeros returns the zero vector of dimension n.
func Zeros(n int) Vector {
	if n < 0 {
		n = 0
	}

	return make(Vector, n)
}

// FromVec3 converts a Vec3 into a general Vector of length 3.
func FromVec3(v Vec3) Vector {
	return Vector{v[0], v[1], v[2]}
}

// ToVec3 converts v into a Vec3. It fails with ErrInvalidDimension unless
// len(v) == 3.
func ToVec3(v Vector) (Vec3, error) {
	if err := ValidateLen(v, 3); err != nil {
		return Vec3{}, vectorErrorf("ToVec3", err)
	}

	return Vec3{v[0], v[1], v[2]}, nil
}
