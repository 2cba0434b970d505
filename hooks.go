package argsparser

// Validator checks a raw value before it is converted. A nil error accepts the
// value. The error returned is kept as the reason for the failure.
type Validator func(value string) error

// Converter turns a raw value into the value stored for an argument.
type Converter func(raw string) (interface{}, error)

// Callback is run each time an argument is given, whether or not its value
// validates. It suits arguments that trigger something, like --help.
type Callback func()

// ErrorHandler receives the failures of a single argument in place of them
// being reported by Parse.
type ErrorHandler func(f *Failure)

// Predicate makes a Validator from a function that only answers yes or no.
// Rejected values fail with ErrInvalidValue.
func Predicate(ok func(string) bool) Validator {
	return func(value string) error {
		if !ok(value) {
			return ErrInvalidValue
		}
		return nil
	}
}

// Typed makes a Converter from a function returning a concrete type.
func Typed[T any](f func(string) (T, error)) Converter {
	return func(raw string) (interface{}, error) {
		v, err := f(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (v Validator) call(value string) (err error) {
	defer recoverInto(&err)
	return v(value)
}

func (c Converter) call(raw string) (_ interface{}, err error) {
	defer recoverInto(&err)
	return c(raw)
}

func recoverInto(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		*err = e
		return
	}
	*err = panicError{r}
}
