// SPDX-License-Identifier: MIT

package calculator

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultPrecision selects the shortest round-trip rendering.
	DefaultPrecision = -1

	// DefaultAskContinue asks "Do you want to perform another operation?"
	// after every evaluation.
	DefaultAskContinue = true

	// DefaultShowMenu prints the operation menu before every choice prompt.
	DefaultShowMenu = true

	// DefaultMaxLineBytes caps a single input line (1 MiB).
	DefaultMaxLineBytes = 1 << 20
)

// Option configures a Session.
type Option func(*options)

type options struct {
	log         logrus.FieldLogger
	precision   int
	askContinue bool
	showMenu    bool

	maxLineBytes int
}

// WithLogger routes session diagnostics to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithPrecision sets the number of fractional digits printed. Negative
// values select the shortest round-trip rendering.
func WithPrecision(prec int) Option {
	return func(o *options) { o.precision = prec }
}

// WithAskContinue toggles the continue prompt. When disabled the session
// keeps looping until "0" or end of input.
func WithAskContinue(ask bool) Option {
	return func(o *options) { o.askContinue = ask }
}

// WithMenu toggles printing the menu before every choice prompt.
func WithMenu(show bool) Option {
	return func(o *options) { o.showMenu = show }
}

// WithMaxLineBytes caps the length of one input line. Longer lines are
// reported as ErrLineTooLong and skipped. Non-positive values are ignored.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineBytes = n
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	o := options{
		log:         silent,
		precision:   DefaultPrecision,
		askContinue: DefaultAskContinue,
		showMenu:    DefaultShowMenu,

		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
