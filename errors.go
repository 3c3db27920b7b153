package cmdlinearg

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	Ok ErrorKind = iota
	InvalidValue
	UnknownOption
)

func (k ErrorKind) String() string {
	switch k {
	case Ok:
		return "No error"
	case InvalidValue:
		return "Invalid Value"
	case UnknownOption:
		return "Unknown Option"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// The operand reported when a positional argument is rejected.
const positionalOperand = "default list"

// Returned as the cause of an InvalidValue error when an option is the last
// argument and there's nothing left to take its value from.
var ErrMissingValue = errors.New("missing value")

// The first failure of a parse. Options set before it keep their values.
type Error struct {
	Kind    ErrorKind
	// The argument as given, "-" for an argument that followed a lone "-",
	// or "default list" for a rejected positional argument.
	Operand string
	// The offending value. Empty for UnknownOption and for missing values.
	Value   string
	// Why the value was rejected, if known.
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidValue:
		val := e.Value
		if errors.Is(e.Err, ErrMissingValue) {
			val = "(null)"
		}
		return fmt.Sprintf("Invalid Value: '%s' for option '%s'", val, orNull(e.Operand))
	case UnknownOption:
		return fmt.Sprintf("Unknown Option: '%s'", orNull(e.Operand))
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func orNull(s string) string {
	if s == "" {
		return "(null)"
	}
	return s
}

func invalidValue(op, val string, err error) *Error {
	return &Error{Kind: InvalidValue, Operand: op, Value: val, Err: err}
}

func unknownOption(op string) *Error {
	return &Error{Kind: UnknownOption, Operand: op}
}

// Misuse of the registration API, as opposed to bad command lines.
type logicError struct {
	msg string
}

func (le logicError) Error() string {
	return le.msg
}
