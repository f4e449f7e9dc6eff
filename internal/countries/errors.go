package countries

import (
	"errors"
	"fmt"
)

// Code categorizes registry and lookup failures.
type Code string

const (
	// CodeInvalidArgument marks a missing required value or an out of range enum.
	CodeInvalidArgument Code = "invalid_argument"
	// CodeInvalidFormat marks a value that fails its structural pattern.
	CodeInvalidFormat Code = "invalid_format"
	// CodeDuplicateKey marks a registration colliding with a different entry.
	CodeDuplicateKey Code = "duplicate_key"
	// CodeNotFound marks a required lookup without a match.
	CodeNotFound Code = "not_found"
	// CodeFormatError marks input that Parse could not resolve to a country.
	CodeFormatError Code = "format_error"
)

// Sentinels for errors.Is. Matching is by code only.
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument}
	ErrInvalidFormat   = &Error{Code: CodeInvalidFormat}
	ErrDuplicateKey    = &Error{Code: CodeDuplicateKey}
	ErrNotFound        = &Error{Code: CodeNotFound}
	ErrFormat          = &Error{Code: CodeFormatError}
)

// Error reports which key and value a failure relates to.
type Error struct {
	Code  Code
	Key   string
	Value string
	Err   error
}

func newError(code Code, key, value string, err error) error {
	return &Error{Code: code, Key: key, Value: value, Err: err}
}

func (e *Error) Error() string {
	var msg string
	switch e.Code {
	case CodeInvalidArgument:
		msg = fmt.Sprintf("invalid %s %q", e.Key, e.Value)
	case CodeInvalidFormat:
		msg = fmt.Sprintf("malformed %s %q", e.Key, e.Value)
	case CodeDuplicateKey:
		msg = fmt.Sprintf("duplicate %s %q", e.Key, e.Value)
	case CodeNotFound:
		msg = fmt.Sprintf("no country with %s %q", e.Key, e.Value)
	case CodeFormatError:
		msg = fmt.Sprintf("cannot parse %q as country", e.Value)
	default:
		msg = string(e.Code)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HasCode reports whether err is an *Error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
