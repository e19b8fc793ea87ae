// SPDX-License-Identifier: MIT

// Command vecalc is an interactive vector math calculator.
//
// Usage:
//
//	vecalc [--precision N] [--no-continue-prompt] [--quiet-menu] [--log-level LEVEL] [--log-format text|json]
//
// Operands are typed as comma-separated numbers, e.g. "1, 2, 3".
// Diagnostics go to stderr; the dialogue uses stdin and stdout.
package main

import (
	"errors"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vecalc/calculator"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], flags.Default)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	s := calculator.NewSession(os.Stdin, os.Stdout, cfg.sessionOptions(logger)...)
	if err := s.Run(); err != nil {
		logger.WithError(err).Fatal("session aborted")
	}
}
