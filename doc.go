// Package vecalc is a small vector-algebra toolkit with an interactive
// calculator on top.
//
// 🚀 What is vecalc?
//
//	Pure, stateless kernels over flat float64 vectors plus a menu-driven
//	text front end:
//		• Linear:      addition, subtraction, scaling, dot, length, distance
//		• Geometry:    cross, projection, reflection, refraction, face-forward
//		• Elementwise: abs, min, max, floor, ceil, snap, clamp, sin, cos, tan
//
// Packages:
//
//	vector/      — the kernels, sentinel errors and length validators
//	calculator/  — operation registry, operand parser, result formatter, session loop
//	cmd/vecalc/  — the interactive binary (flags, env, logging)
//
// Quick example:
//
//	sum, err := vector.Add(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
//	// sum == [5 7 9]
//
//	go install github.com/katalvlaran/vecalc/cmd/vecalc@latest
package vecalc
