package argsparser

// RegisterSwitch registers a named argument that takes no value. Its value is
// the bool true when given, false otherwise.
func (r *Registry) RegisterSwitch(name string, opts ...ParamOpt) (Token, error) {
	d := &Descriptor{name: name}
	return r.register(Switch, d, opts)
}
