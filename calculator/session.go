// SPDX-License-Identifier: MIT

package calculator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vecalc/vector"
)

const (
	banner         = "Vector Math Calculator"
	continuePrompt = "\nDo you want to perform another operation? (yes/no): "
)

// Session is one interactive read-compute-print loop. It is not safe for
// concurrent use; run one Session per input stream.
type Session struct {
	in   *bufio.Reader
	out  io.Writer
	ops  []Operation
	opts options
	werr error
}

// NewSession returns a Session reading answers from in and writing prompts
// and results to out.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	return &Session{
		in:   bufio.NewReader(in),
		out:  out,
		ops:  Registry(),
		opts: gatherOptions(opts...),
	}
}

// Run drives the loop until the user exits or input ends. End of input is
// a normal stop and returns nil; only read or write failures are returned.
func (s *Session) Run() error {
	s.println(banner)
	for {
		again, err := s.round()
		if errors.Is(err, io.EOF) {
			s.println()
			return s.werr
		}
		if err != nil {
			return err
		}
		if !again || s.werr != nil {
			return s.werr
		}
	}
}

// round runs one menu cycle and reports whether another should follow.
func (s *Session) round() (bool, error) {
	if s.opts.showMenu {
		s.printMenu()
	}

	var op Operation
	line, err := s.readLine(fmt.Sprintf("Enter operation choice (0-%d): ", len(s.ops)))
	if err == nil {
		var choice int
		if choice, err = ParseChoice(line, len(s.ops)); err == nil {
			if choice == 0 {
				s.println("Exiting...")
				return false, nil
			}
			op, err = Lookup(choice)
		}
	}
	switch {
	case isInputError(err):
		s.opts.log.WithError(err).Warn("bad menu choice")
		s.report(err)
	case err != nil:
		return false, err
	default:
		if err = s.evaluate(op); err != nil {
			return false, err
		}
	}

	if !s.opts.askContinue {
		return true, nil
	}
	answer, err := s.readLine(continuePrompt)
	if errors.Is(err, ErrLineTooLong) {
		s.report(err)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

// evaluate reads the operands of op, runs it and prints the outcome.
// Only input failures are returned; evaluation errors are reported inline.
func (s *Session) evaluate(op Operation) error {
	log := s.opts.log.WithFields(logrus.Fields{"op": op.Title, "id": op.ID})

	var in Operands
	for _, p := range op.VectorPrompts {
		line, err := s.readLine(p)
		if err != nil && !isInputError(err) {
			return err
		}
		var v vector.Vector
		if err == nil {
			v, err = ParseVector(line)
		}
		if err != nil {
			log.WithError(err).Warn("bad vector operand")
			s.report(err)
			return nil
		}
		in.Vectors = append(in.Vectors, v)
	}
	for _, p := range op.ScalarPrompts {
		line, err := s.readLine(p)
		if err != nil && !isInputError(err) {
			return err
		}
		var x float64
		if err == nil {
			x, err = ParseScalar(line)
		}
		if err != nil {
			log.WithError(err).Warn("bad scalar operand")
			s.report(err)
			return nil
		}
		in.Scalars = append(in.Scalars, x)
	}

	res, err := Evaluate(op, in)
	if err != nil {
		log.WithError(err).Warn("operation failed")
		s.report(err)
		return nil
	}
	log.Debug("operation evaluated")

	s.println(op.heading(in, s.opts.precision))
	s.println(res.Format(s.opts.precision))

	return nil
}

func (s *Session) printMenu() {
	s.println("\nAvailable Operations:")
	for _, op := range s.ops {
		s.printf("%d. %s\n", op.ID, op.Title)
	}
	s.println("0. Exit")
	s.println()
}

// readLine prints prompt and returns the next input line without its
// terminator. A line longer than the configured cap is drained up to its
// newline and rejected with ErrLineTooLong, so the next read starts on a
// fresh line. It returns io.EOF when input is exhausted.
func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)

	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, err := s.in.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > s.opts.maxLineBytes+1 { // +1 for the newline
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(buf) == 0 && !tooLong {
				return "", io.EOF
			}
		case err != nil:
			return "", calcErrorf("readLine", err)
		}

		if tooLong {
			return "", fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, s.opts.maxLineBytes)
		}
		line := strings.TrimSuffix(string(buf), "\n")

		return strings.TrimSuffix(line, "\r"), nil
	}
}

// isInputError reports whether err is a user mistake to show and move past.
func isInputError(err error) bool {
	return errors.Is(err, ErrLineTooLong) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrInvalidChoice)
}

// report prints err the way every failure is shown to the user.
func (s *Session) report(err error) {
	s.printf("Error: %v\n", err)
}

// printf and println keep the first write error for Run to return.
func (s *Session) printf(format string, args ...any) {
	if s.werr != nil {
		return
	}
	_, s.werr = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	if s.werr != nil {
		return
	}
	_, s.werr = fmt.Fprintln(s.out, args...)
}
