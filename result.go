package argsparser

import (
	"fmt"
	"reflect"
)

type ValidationStatus uint8

const (
	// No validator ran: the argument has none, or wasn't given.
	Unvalidated ValidationStatus = iota
	Passed
	Failed
)

func (s ValidationStatus) String() string {
	switch s {
	case Unvalidated:
		return "unvalidated"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("ValidationStatus(%d)", uint8(s))
	}
}

// Validation is the outcome of running an argument's validator.
type Validation struct {
	Status ValidationStatus
	// Why the validator rejected the value.
	Reason string
}

type argState struct {
	raw        string
	hasRaw     bool
	value      interface{}
	hasValue   bool
	validation Validation
	supplied   bool
}

// Result holds what one parse made of the registered arguments.
type Result struct {
	reg    *Registry
	states [Option + 1][]argState
	// Non-critical failures not taken by an error handler, in the order found.
	Failures Failures
	// Unprefixed arguments left over after the positionals were filled, when
	// parsing permissively.
	Extra []string
}

func newResult(reg *Registry) *Result {
	r := &Result{reg: reg}
	for k, ds := range reg.byKind {
		r.states[k] = make([]argState, len(ds))
		for i, d := range ds {
			if d.def != nil {
				r.states[k][i] = argState{
					raw:      *d.def,
					hasRaw:   true,
					value:    d.defValue,
					hasValue: true,
				}
			}
		}
	}
	return r
}

func (r *Result) state(t Token) *argState {
	if int(t.Kind) >= len(r.states) {
		return nil
	}
	ss := r.states[t.Kind]
	if int(t.Position) >= len(ss) {
		return nil
	}
	return &ss[t.Position]
}

// Lookup returns the token for a switch or option name.
func (r *Result) Lookup(name string) Token {
	return r.reg.Lookup(name)
}

// Value returns the value in effect for the argument: the converted value if
// it was given and accepted, or else its default.
func (r *Result) Value(t Token) (interface{}, bool) {
	st := r.state(t)
	if st == nil || !st.hasValue {
		return nil, false
	}
	return st.value, true
}

// Value returns the value of the argument as a T. It fails with
// ErrNotSupplied if there's no value in effect, and ErrTypeMismatch if the
// value isn't a T.
func Value[T any](r *Result, t Token) (ret T, err error) {
	d, ok := r.reg.Descriptor(t)
	if !ok || r.state(t) == nil {
		err = fmt.Errorf("%w: %v", ErrUnknownToken, t)
		return
	}
	v, ok := r.Value(t)
	if !ok {
		err = fmt.Errorf("%v: %w", d, ErrNotSupplied)
		return
	}
	ret, ok = v.(T)
	if !ok {
		err = fmt.Errorf("%v: %w: have %T, want %v", d, ErrTypeMismatch, v, reflect.TypeOf((*T)(nil)).Elem())
	}
	return
}

// Raw returns the last raw value given for the argument, or its raw default.
func (r *Result) Raw(t Token) (string, bool) {
	st := r.state(t)
	if st == nil || !st.hasRaw {
		return "", false
	}
	return st.raw, true
}

func (r *Result) Validation(t Token) Validation {
	st := r.state(t)
	if st == nil {
		return Validation{}
	}
	return st.validation
}

// WasSupplied reports whether the argument was given on the command line, as
// opposed to being absent or defaulted. An argument that was given and failed
// is still supplied.
func (r *Result) WasSupplied(t Token) bool {
	st := r.state(t)
	return st != nil && st.supplied
}
