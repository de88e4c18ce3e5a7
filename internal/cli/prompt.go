// Package cli implements the interactive menu sessions shared by all apps.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrAborted signals the current operation was cancelled on the first invalid
// field. The message has already been printed; nothing was persisted.
var ErrAborted = errors.New("operation aborted")

// Prompter collects operation fields one prompt at a time from an injected
// input source.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps a reader/writer pair for prompting.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Printf writes formatted output to the session writer.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the session writer.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Line prints the label and reads one line, trimmed. io.EOF on end of input.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// String reads a required text field; empty input prints msg and aborts.
func (p *Prompter) String(label, msg string) (string, error) {
	s, err := p.Line(label)
	if err != nil {
		return "", err
	}
	if s == "" {
		fmt.Fprintln(p.out, msg)
		return "", ErrAborted
	}
	return s, nil
}

// Optional reads a text field where empty means "keep the previous value".
func (p *Prompter) Optional(label string) (string, error) {
	return p.Line(label)
}

// PositiveFloat reads a number that must parse and be strictly positive.
func (p *Prompter) PositiveFloat(label, msg string) (float64, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.ParseFloat(s, 64)
	if convErr != nil || v <= 0 {
		fmt.Fprintln(p.out, msg)
		return 0, ErrAborted
	}
	return v, nil
}

// Int reads any integer.
func (p *Prompter) Int(label, msg string) (int, error) {
	return p.intWhere(label, msg, func(int) bool { return true })
}

// PositiveInt reads an integer that must be strictly positive.
func (p *Prompter) PositiveInt(label, msg string) (int, error) {
	return p.intWhere(label, msg, func(v int) bool { return v > 0 })
}

// NonNegativeInt reads an integer that must be zero or more.
func (p *Prompter) NonNegativeInt(label, msg string) (int, error) {
	return p.intWhere(label, msg, func(v int) bool { return v >= 0 })
}

func (p *Prompter) intWhere(label, msg string, ok func(int) bool) (int, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.Atoi(s)
	if convErr != nil || !ok(v) {
		fmt.Fprintln(p.out, msg)
		return 0, ErrAborted
	}
	return v, nil
}

// Enum reads a value from a fixed set, case-insensitively. With allowEmpty,
// empty input is returned as-is for the caller to default.
func (p *Prompter) Enum(label, msg string, allowEmpty bool, allowed ...string) (string, error) {
	s, err := p.Line(label)
	if err != nil {
		return "", err
	}
	s = strings.ToLower(s)
	if s == "" && allowEmpty {
		return "", nil
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	fmt.Fprintln(p.out, msg)
	return "", ErrAborted
}
