package cronexpr

import (
	"fmt"
	"strings"
)

// Error is the error type returned by Parse and by the solver. It carries a
// single human-readable message; parse errors quote the normalized input with
// a caret under the offending column.
type Error struct {
	msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

func errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// newParseError formats a parse failure against the normalized input. The
// offset is the zero-based column the caret points at.
func newParseError(input string, offset int, msg string) *Error {
	if msg == "" {
		msg = "malformed expression"
	}
	indent := strings.Repeat(" ", offset)
	return errorf("failed to parse crontab expression:\n%s\n%s^ %s", input, indent, msg)
}

// fieldError is a failure local to one field sub-parse. The offset is
// relative to the start of the field; Parse shifts it to the full input.
type fieldError struct {
	offset int
	msg    string
}
