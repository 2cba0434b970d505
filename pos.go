package argsparser

import "fmt"

// RegisterPositional registers an argument filled by the order of unprefixed
// arguments. Positionals are required unless Optional is given.
func (r *Registry) RegisterPositional(name string, opts ...ParamOpt) (Token, error) {
	if name == "" {
		return NullToken, fmt.Errorf("%w: positional name is empty", ErrInvalidName)
	}
	d := &Descriptor{name: name, required: true}
	return r.register(Positional, d, opts)
}
