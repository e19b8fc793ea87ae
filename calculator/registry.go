// SPDX-License-Identifier: MIT

package calculator

import (
	"github.com/katalvlaran/vecalc/vector"
)

// Common prompts.
const (
	promptVector  = "Enter vector (comma-separated values): "
	promptVector1 = "Enter vector 1 (comma-separated values): "
	promptVector2 = "Enter vector 2 (comma-separated values): "
	promptNormal  = "Enter normal vector (comma-separated values): "
	promptIncid   = "Enter incident vector (comma-separated values): "
)

var (
	twoVectors = []string{promptVector1, promptVector2}
	oneVector  = []string{promptVector}
)

// vectorResult and scalarResult adapt kernel returns to Result.
func vectorResult(v vector.Vector, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}

	return Result{Vector: v}, nil
}

func scalarResult(x float64, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}

	return Result{Scalar: x, IsScalar: true}, nil
}

// binary adapts a two-vector kernel.
func binary(fn func(a, b vector.Vector) (vector.Vector, error)) func(Operands) (Result, error) {
	return func(in Operands) (Result, error) {
		return vectorResult(fn(in.Vectors[0], in.Vectors[1]))
	}
}

// unary adapts a total one-vector kernel.
func unary(fn func(v vector.Vector) vector.Vector) func(Operands) (Result, error) {
	return func(in Operands) (Result, error) {
		return Result{Vector: fn(in.Vectors[0])}, nil
	}
}

// scaleOp serves both "Scalar Multiplication" and "Vector Scaling".
func scaleOp(in Operands) (Result, error) {
	return Result{Vector: vector.Scale(in.Vectors[0], in.Scalars[0])}, nil
}

// registry is the dispatch table in menu order; ID equals index+1.
var registry = []Operation{
	{
		ID: 1, Title: "Vector Addition", Heading: "Result of Vector Addition:",
		VectorPrompts: twoVectors, Run: binary(vector.Add),
	},
	{
		ID: 2, Title: "Vector Subtraction", Heading: "Result of Vector Subtraction:",
		VectorPrompts: twoVectors, Run: binary(vector.Sub),
	},
	{
		ID: 3, Title: "Scalar Multiplication", Heading: "Result of Scalar Multiplication:",
		VectorPrompts: oneVector, ScalarPrompts: []string{"Enter scalar value: "}, Run: scaleOp,
	},
	{
		ID: 4, Title: "Dot Product", Heading: "Result of Dot Product:",
		VectorPrompts: twoVectors,
		Run: func(in Operands) (Result, error) {
			return scalarResult(vector.Dot(in.Vectors[0], in.Vectors[1]))
		},
	},
	{
		ID: 5, Title: "Cross Product (for 3-dimensional vectors)", Heading: "Result of Cross Product:",
		VectorPrompts: []string{
			"Enter vector 1 (3-dimensional, comma-separated values): ",
			"Enter vector 2 (3-dimensional, comma-separated values): ",
		},
		Run: binary(vector.Cross),
	},
	{
		ID: 6, Title: "Vector Projection", Heading: "Result of Vector Projection:",
		VectorPrompts: twoVectors, Run: binary(vector.Project),
	},
	{
		ID: 7, Title: "Vector Reflection", Heading: "Result of Vector Reflection:",
		VectorPrompts: []string{promptVector, promptNormal}, Run: binary(vector.Reflect),
	},
	{
		ID: 8, Title: "Vector Refraction", Heading: "Result of Vector Refraction:",
		VectorPrompts: []string{promptIncid, promptNormal},
		ScalarPrompts: []string{"Enter index of refraction (eta): "},
		Run: func(in Operands) (Result, error) {
			return vectorResult(vector.Refract(in.Vectors[0], in.Vectors[1], in.Scalars[0]))
		},
	},
	{
		// The third vector is still asked for so the dialogue matches the
		// classic calculator; FaceForward does not use it.
		ID: 9, Title: "Face Forward", Heading: "Result of Face Forward Operation:",
		VectorPrompts: []string{
			promptNormal,
			promptIncid,
			"Enter normalized normal vector (comma-separated values): ",
		},
		Run: func(in Operands) (Result, error) {
			return vectorResult(vector.FaceForward(in.Vectors[0], in.Vectors[1]))
		},
	},
	{
		ID: 10, Title: "Vector Scaling", Heading: "Result of Vector Scaling:",
		VectorPrompts: oneVector, ScalarPrompts: []string{"Enter scaling factor: "}, Run: scaleOp,
	},
	{
		ID: 11, Title: "Vector Distance", Heading: "Distance between Vector 1 and Vector 2:",
		VectorPrompts: twoVectors,
		Run: func(in Operands) (Result, error) {
			return scalarResult(vector.Distance(in.Vectors[0], in.Vectors[1]))
		},
	},
	{
		ID: 12, Title: "Vector Length (Magnitude)", Heading: "Length (Magnitude) of the Vector:",
		VectorPrompts: oneVector,
		Run: func(in Operands) (Result, error) {
			return scalarResult(vector.Length(in.Vectors[0]), nil)
		},
	},
	{
		ID: 13, Title: "Vector Absolute Value", Heading: "Absolute Value of each component of the Vector:",
		VectorPrompts: oneVector, Run: unary(vector.Abs),
	},
	{
		ID: 14, Title: "Vector Minimum", Heading: "Component-wise Minimum of Vector 1 and Vector 2:",
		VectorPrompts: twoVectors, Run: binary(vector.Min),
	},
	{
		ID: 15, Title: "Vector Maximum", Heading: "Component-wise Maximum of Vector 1 and Vector 2:",
		VectorPrompts: twoVectors, Run: binary(vector.Max),
	},
	{
		ID: 16, Title: "Vector Floor", Heading: "Floor of each component of the Vector:",
		VectorPrompts: oneVector, Run: unary(vector.Floor),
	},
	{
		ID: 17, Title: "Vector Ceiling", Heading: "Ceiling of each component of the Vector:",
		VectorPrompts: oneVector, Run: unary(vector.Ceil),
	},
	{
		ID: 18, Title: "Vector Snap", Heading: "Vector Snapped to Nearest Multiple of %s:",
		VectorPrompts: oneVector, ScalarPrompts: []string{"Enter increment value for snapping: "},
		Run: func(in Operands) (Result, error) {
			return vectorResult(vector.Snap(in.Vectors[0], in.Scalars[0]))
		},
	},
	{
		ID: 19, Title: "Vector Wrap (clamp)", Heading: "Vector Clamped between Min and Max Values:",
		VectorPrompts: []string{
			promptVector,
			"Enter min values (comma-separated values): ",
			"Enter max values (comma-separated values): ",
		},
		Run: func(in Operands) (Result, error) {
			return vectorResult(vector.Clamp(in.Vectors[0], in.Vectors[1], in.Vectors[2]))
		},
	},
	{
		ID: 20, Title: "Vector Sine", Heading: "Sine (sin) of each component of the Vector:",
		VectorPrompts: oneVector, Run: unary(vector.Sin),
	},
	{
		ID: 21, Title: "Vector Cosine", Heading: "Cosine (cos) of each component of the Vector:",
		VectorPrompts: oneVector, Run: unary(vector.Cos),
	},
	{
		ID: 22, Title: "Vector Tangent", Heading: "Tangent (tan) of each component of the Vector:",
		VectorPrompts: oneVector, Run: unary(vector.Tan),
	},
}

// Registry returns the menu operations in display order. The returned slice
// is a copy; callers may reorder it freely.
func Registry() []Operation {
	out := make([]Operation, len(registry))
	copy(out, registry)

	return out
}

// Lookup returns the operation with the given menu ID.
// Errors: ErrInvalidChoice.
func Lookup(id int) (Operation, error) {
	if id < 1 || id > len(registry) {
		return Operation{}, calcErrorf("Lookup", ErrInvalidChoice)
	}

	return registry[id-1], nil
}
