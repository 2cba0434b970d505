package argsparser

// ParamOpt configures an argument at registration. Options that do not apply
// to the kind being registered are ignored.
type ParamOpt func(*Descriptor)

func Help(helpText string) ParamOpt {
	return func(d *Descriptor) {
		d.help = helpText
	}
}

// Short sets the single character alias of a switch or option, given as -x.
func Short(alias rune) ParamOpt {
	return func(d *Descriptor) {
		d.short = alias
	}
}

// Default sets the raw value in effect when the argument is not given. It is
// run through the converter at registration.
func Default(raw string) ParamOpt {
	return func(d *Descriptor) {
		d.def = &raw
	}
}

func Validate(v Validator) ParamOpt {
	return func(d *Descriptor) {
		d.validate = v
	}
}

func Convert(c Converter) ParamOpt {
	return func(d *Descriptor) {
		d.convert = c
	}
}

// AfterParse sets the callback run each time the argument is given.
func AfterParse(f Callback) ParamOpt {
	return func(d *Descriptor) {
		d.callback = f
	}
}

func OnError(h ErrorHandler) ParamOpt {
	return func(d *Descriptor) {
		d.onError = h
	}
}

// Critical makes any failure of the argument abort the parse.
func Critical() ParamOpt {
	return func(d *Descriptor) {
		d.critical = true
	}
}

// Required makes an option fail the parse when it is absent and has no
// default.
func Required() ParamOpt {
	return func(d *Descriptor) {
		d.required = true
	}
}

// Optional lets a positional be left out.
func Optional() ParamOpt {
	return func(d *Descriptor) {
		d.required = false
	}
}

// AllowEmpty lets an option that takes a value be the last argument, in which
// case its value is the empty string.
func AllowEmpty() ParamOpt {
	return func(d *Descriptor) {
		d.allowEmpty = true
	}
}

// Repeated lets the argument be given any number of times. Its value is a
// slice of the converted values in the order given, replacing any default,
// and its raw value is the last one given. A repeated positional takes every
// unprefixed argument that reaches it.
func Repeated() ParamOpt {
	return func(d *Descriptor) {
		d.repeated = true
	}
}

// Negatable makes a switch also answer to --no-<name>, which sets it false.
func Negatable() ParamOpt {
	return func(d *Descriptor) {
		d.negatable = true
	}
}
