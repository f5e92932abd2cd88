package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrUnknownDay = errors.New("unknown puzzle day")
	ErrEmptyInput = errors.New("empty puzzle input")
	ErrMalformed  = errors.New("malformed input")
)

// ParseError reports a line (and optionally a column) that does not match the
// grammar expected by a solver. Line and Column are 1-based; Column is 0 when
// the whole line is at fault.
type ParseError struct {
	Line   int
	Column int
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "line %d", e.Line)
	if e.Column > 0 {
		fmt.Fprintf(&b, ", column %d", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Input != "" {
		fmt.Fprintf(&b, " (%q)", e.Input)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, or ErrMalformed when there is none so
// callers can match any parse failure with errors.Is.
func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformed
}

// Policy decides what happens to a line that fails to parse.
type Policy int

const (
	// FailFast aborts the solve on the first bad line.
	FailFast Policy = iota
	// SkipInvalid logs the bad line and keeps going.
	SkipInvalid
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case SkipInvalid:
		return "skip_invalid"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a config string onto a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail_fast", "fail-fast":
		return FailFast, nil
	case "skip_invalid", "skip-invalid", "skip":
		return SkipInvalid, nil
	default:
		return FailFast, fmt.Errorf("invalid policy %q (valid: fail_fast, skip_invalid)", s)
	}
}

// Handle applies the policy to err. It returns err unchanged under FailFast;
// under SkipInvalid parse errors are logged and swallowed while any other
// error is still returned.
func (p Policy) Handle(err error, log *zap.Logger) error {
	if err == nil {
		return nil
	}
	if p != SkipInvalid {
		return err
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		return err
	}
	if log != nil {
		log.Warn("Skipping invalid line",
			zap.Int("line", perr.Line),
			zap.String("reason", perr.Reason))
	}
	return nil
}
