package argsparser

// RegisterOption registers a named argument. If requiresValue is set the
// following argument is its value, otherwise it behaves like a switch unless
// given a value inline as --name=value.
func (r *Registry) RegisterOption(name string, requiresValue bool, opts ...ParamOpt) (Token, error) {
	d := &Descriptor{name: name, requiresValue: requiresValue}
	return r.register(Option, d, opts)
}
