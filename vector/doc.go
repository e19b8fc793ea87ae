// SPDX-License-Identifier: MIT

// Package vector provides elementary vector algebra over flat float64
// sequences.
//
// 🚀 What is in here?
//
//	A small, stateless kernel set that every caller can use concurrently:
//	  • Linear:      Add, Sub, Scale, Dot, Length, Distance
//	  • Geometry:    Cross, Project, Reflect, Refract, FaceForward
//	  • Elementwise: Abs, Min, Max, Floor, Ceil, Snap, Clamp, Sin, Cos, Tan
//
// ✨ Contract:
//   - Inputs are never mutated; every call returns a fresh Vector or a scalar.
//   - Binary component-wise operations require equal lengths and fail with
//     ErrDimensionMismatch otherwise. No partial result is returned.
//   - Cross requires two 3-vectors (ErrInvalidDimension). Cross3 offers the
//     same product on the fixed-size Vec3 type.
//   - Division by a zero-magnitude vector (Project, Reflect) or by a zero
//     increment (Snap) is rejected with ErrDegenerateInput. There is no
//     NaN/Inf propagation path.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vecalc/vector"
//
//	sum, err := vector.Add(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
//	if err != nil {
//	  // errors.Is(err, vector.ErrDimensionMismatch)
//	}
//	fmt.Println(sum) // [5 7 9]
//
// Performance:
//
//   - Time:   O(n) per call
//   - Memory: O(n) for vector results, O(1) for scalar results
package vector
