// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecalc/vector"
)

// ExampleAdd shows the component-wise sum of two 3-vectors.
func ExampleAdd() {
	sum, err := vector.Add(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output: [5 7 9]
}

// ExampleCross computes x × y = z.
func ExampleCross() {
	z, _ := vector.Cross(vector.Vector{1, 0, 0}, vector.Vector{0, 1, 0})
	fmt.Println(z)
	// Output: [0 0 1]
}

// ExampleLength shows the 3-4-5 triangle.
func ExampleLength() {
	fmt.Println(vector.Length(vector.Vector{3, 4}))
	// Output: 5
}

// ExampleClamp keeps each component inside its own bounds.
func ExampleClamp() {
	v, _ := vector.Clamp(
		vector.Vector{5, -2, 10},
		vector.Vector{0, 0, 0},
		vector.Vector{8, 8, 8},
	)
	fmt.Println(v)
	// Output: [5 0 8]
}

// ExampleRefract shows total internal reflection yielding the zero vector.
func ExampleRefract() {
	v, _ := vector.Refract(vector.Vector{1, 0, 0}, vector.Vector{0, 1, 0}, 2)
	fmt.Println(v)
	// Output: [0 0 0]
}

// ExampleProject shows the zero-divisor guard.
func ExampleProject() {
	_, err := vector.Project(vector.Vector{1, 2}, vector.Vector{0, 0})
	fmt.Println(errors.Is(err, vector.ErrDegenerateInput))
	// Output: true
}
