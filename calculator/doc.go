// SPDX-License-Identifier: MIT

// Package calculator drives the vector package from a text dialogue.
//
// A Session prints a numbered menu, reads the chosen operation and its
// comma-separated operands, evaluates exactly one vector kernel and prints
// the result as "[a, b, c]" (vectors) or as raw numeric text (scalars).
// Any failure, from a malformed number to a dimension mismatch, is printed
// as "Error: ..." and the loop continues; only "0", a negative answer to the
// continue prompt, or the end of input stop it.
//
// The menu is a dispatch table (see Registry): every entry names its
// operand prompts and a Run function over parsed Operands, so the parser,
// the formatter and the loop are shared by all 22 operations.
package calculator
