// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecalc/vector"
)

// ParseVector parses comma-separated numbers such as "1, 2.5, -3".
// Surrounding whitespace around each token is ignored. An empty token,
// including an entirely empty line, is an error.
func ParseVector(text string) (vector.Vector, error) {
	tokens := strings.Split(text, ",")
	out := make(vector.Vector, len(tokens))
	for i, tok := range tokens {
		x, err := ParseScalar(tok)
		if err != nil {
			return nil, calcErrorf(fmt.Sprintf("ParseVector: component %d", i+1), err)
		}
		out[i] = x
	}

	return out, nil
}

// ParseScalar parses a single number. "inf" and "nan" are accepted, in
// line with strconv.ParseFloat.
func ParseScalar(text string) (float64, error) {
	tok := strings.TrimSpace(text)
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, tok)
	}

	return x, nil
}

// ParseChoice parses a menu selector in [0, maxChoice].
func ParseChoice(text string, maxChoice int) (int, error) {
	tok := strings.TrimSpace(text)
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, tok)
	}
	if n < 0 || n > maxChoice {
		return 0, fmt.Errorf("%w: please enter a number between 0 and %d", ErrInvalidChoice, maxChoice)
	}

	return n, nil
}
