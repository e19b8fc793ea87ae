// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vecalc/calculator"
)

// config is the command line of vecalc. Every flag can also be set through
// its VECALC_* environment variable.
type config struct {
	LogLevel         string `long:"log-level" env:"VECALC_LOG_LEVEL" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"diagnostics level written to stderr"`
	LogFormat        string `long:"log-format" env:"VECALC_LOG_FORMAT" default:"text" choice:"text" choice:"json" description:"diagnostics format"`
	Precision        int    `short:"p" long:"precision" env:"VECALC_PRECISION" default:"-1" description:"fractional digits in results; negative prints the shortest exact form"`
	NoContinuePrompt bool   `long:"no-continue-prompt" env:"VECALC_NO_CONTINUE_PROMPT" description:"do not ask whether to perform another operation"`
	QuietMenu        bool   `long:"quiet-menu" env:"VECALC_QUIET_MENU" description:"do not print the operation menu before each choice"`
	MaxLineBytes     int    `long:"max-line-bytes" env:"VECALC_MAX_LINE_BYTES" default:"1048576" description:"longest accepted input line; longer lines are reported and skipped"`
}

// parseConfig parses args (without the program name) with the given parser
// flags.
func parseConfig(args []string, opts flags.Options) (config, error) {
	var cfg config
	parser := flags.NewParser(&cfg, opts)
	parser.Name = "vecalc"
	if _, err := parser.ParseArgs(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// newLogger builds the diagnostics logger described by cfg.
func newLogger(cfg config, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

// sessionOptions maps cfg onto calculator options.
func (cfg config) sessionOptions(logger logrus.FieldLogger) []calculator.Option {
	return []calculator.Option{
		calculator.WithLogger(logger),
		calculator.WithPrecision(cfg.Precision),
		calculator.WithAskContinue(!cfg.NoContinuePrompt),
		calculator.WithMenu(!cfg.QuietMenu),
		calculator.WithMaxLineBytes(cfg.MaxLineBytes),
	}
}
