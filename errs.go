package argsparser

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies a Failure. It implements error so that callers can
// test for a kind with errors.Is.
type FailureKind int

const (
	// A prefixed argument matched no registered name, or a positional value
	// was given with no positional left to take it.
	UnrecognizedArgument FailureKind = iota + 1
	// An option that takes a value was the last argument.
	MissingValue
	// The validator rejected the value.
	ValidationFailed
	// The converter could not produce a value.
	ConversionFailed
	// A required argument was not given and has no default.
	MissingRequired
	// A switch or option name was registered twice.
	DuplicateRegistration
)

func (k FailureKind) String() string {
	switch k {
	case UnrecognizedArgument:
		return "unrecognized argument"
	case MissingValue:
		return "missing value"
	case ValidationFailed:
		return "validation failed"
	case ConversionFailed:
		return "conversion failed"
	case MissingRequired:
		return "missing required argument"
	case DuplicateRegistration:
		return "duplicate registration"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

func (k FailureKind) Error() string {
	return k.String()
}

// Failure is a single problem found while registering or parsing.
type Failure struct {
	// The argument the failure belongs to. NullToken for arguments that
	// matched nothing, and for duplicate registrations.
	Token Token
	Kind  FailureKind
	// The offending command line argument or registered name.
	Arg string
	// The underlying cause, if any.
	Err error
}

func (f *Failure) Error() string {
	var sb strings.Builder
	sb.WriteString(f.Kind.String())
	if f.Arg != "" {
		fmt.Fprintf(&sb, " %q", f.Arg)
	}
	if f.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(f.Err.Error())
	}
	return sb.String()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func (f *Failure) Is(target error) bool {
	k, ok := target.(FailureKind)
	return ok && k == f.Kind
}

// Failures is every non-critical failure of a parse, in the order found.
type Failures []*Failure

func (fs Failures) Error() string {
	switch len(fs) {
	case 0:
		return "no failures"
	case 1:
		return fs[0].Error()
	}
	msgs := make([]string, 0, len(fs))
	for _, f := range fs {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("%d failures: %s", len(fs), strings.Join(msgs, "; "))
}

func (fs Failures) Unwrap() []error {
	errs := make([]error, 0, len(fs))
	for _, f := range fs {
		errs = append(errs, f)
	}
	return errs
}

// Of returns the failures for the given token.
func (fs Failures) Of(t Token) (ret Failures) {
	for _, f := range fs {
		if f.Token == t {
			ret = append(ret, f)
		}
	}
	return
}

var (
	ErrRegistrationClosed = errors.New("registration closed: parsing has started")
	ErrInvalidName        = errors.New("invalid name")
	ErrTooManyArguments   = errors.New("too many arguments of one kind")
	ErrInvalidDefault     = errors.New("invalid default")
	// Generic reason for validators that only answer yes or no.
	ErrInvalidValue = errors.New("invalid value")
	ErrNotSupplied  = errors.New("no value supplied")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrUnknownToken = errors.New("unknown token")
)

// Returned by validators and converters that panicked.
type panicError struct {
	value interface{}
}

func (e panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
