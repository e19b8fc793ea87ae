// SPDX-License-Identifier: MIT

package calculator_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/vecalc/calculator"
)

// ExampleSession replays a short scripted dialogue: one dot product, then exit.
func ExampleSession() {
	script := "4\n1,0,0\n0,1,0\n0\n"
	s := calculator.NewSession(strings.NewReader(script), os.Stdout,
		calculator.WithMenu(false),
		calculator.WithAskContinue(false),
	)
	_ = s.Run()
	// Output:
	// Vector Math Calculator
	// Enter operation choice (0-22): Enter vector 1 (comma-separated values): Enter vector 2 (comma-separated values): Result of Dot Product:
	// 0
	// Enter operation choice (0-22): Exiting...
}
