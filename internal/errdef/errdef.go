// Package errdef classifies the failures of the textwrap command so
// main can pick an exit status without matching on message text.
package errdef

import (
	stdErrors "errors"
	"fmt"
)

// Code names the stage of a wrap run that failed.
type Code string

const (
	CodeUnknown Code = "unknown"
	// CodeConfig covers config files, env values and --set assignments
	// that do not map onto wrap options.
	CodeConfig Code = "config"
	// CodeDictionary covers hyphenation pattern files that cannot be parsed.
	CodeDictionary Code = "dictionary"
	// CodeFilesystem covers reading inputs and writing filled output.
	CodeFilesystem Code = "filesystem"
	// CodeUsage covers bad flags and flag combinations.
	CodeUsage Code = "usage"
)

// Error is a coded failure. Message says what was being done, Err why it
// failed.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error renders as "code: message: cause", dropping empty parts.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]any, 0, 3)
	parts = append(parts, e.Code)
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Err != nil {
		parts = append(parts, e.Err)
	}
	switch len(parts) {
	case 3:
		return fmt.Sprintf("%s: %s: %v", parts...)
	case 2:
		return fmt.Sprintf("%s: %v", parts...)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Wrap tags err with code. The message is formatted only when format is
// set. A nil err stays nil so callers can wrap unconditionally.
func Wrap(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := ""
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: orUnknown(code), Message: msg, Err: err}
}

// New reports a failure detected by textwrap itself, with no cause.
func New(code Code, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: orUnknown(code), Message: msg}
}

// CodeOf returns the code of the outermost *Error in err's chain, or
// CodeUnknown for errors that never went through this package.
func CodeOf(err error) Code {
	var e *Error
	if stdErrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Is reports whether err was tagged with code.
func Is(err error, code Code) bool {
	var e *Error
	return stdErrors.As(err, &e) && e.Code == code
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for usage
// errors and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case Is(err, CodeUsage):
		return 2
	default:
		return 1
	}
}

func orUnknown(code Code) Code {
	if code == "" {
		return CodeUnknown
	}
	return code
}
