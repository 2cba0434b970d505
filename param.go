package argsparser

import (
	"fmt"
	"reflect"
)

// Descriptor is the registration record of one argument. Which fields matter
// depends on the kind: aliases and value requirements only apply to switches
// and options, and positionals are found by order alone. Descriptors don't
// change after registration; parsed values live in the Result.
type Descriptor struct {
	token Token
	name  string
	short rune
	help  string
	// Raw default and its converted value.
	def      *string
	defValue interface{}

	validate Validator
	convert  Converter
	callback Callback
	onError  ErrorHandler

	critical bool
	required bool
	// Option takes the following argument as its value.
	requiresValue bool
	allowEmpty    bool
	// Each occurrence appends to a slice instead of replacing the value.
	repeated bool
	// Switch also answers to its long name prefixed with "no-".
	negatable bool
}

func (d *Descriptor) Token() Token   { return d.token }
func (d *Descriptor) Kind() Kind     { return d.token.Kind }
func (d *Descriptor) Name() string   { return d.name }
func (d *Descriptor) Short() rune    { return d.short }
func (d *Descriptor) Help() string   { return d.help }
func (d *Descriptor) Critical() bool { return d.critical }
func (d *Descriptor) Repeated() bool { return d.repeated }

// NegatedName returns the long name that turns a negatable switch off.
func (d *Descriptor) NegatedName() (string, bool) {
	if d.token.Kind != Switch || !d.negatable {
		return "", false
	}
	return negatedPrefix + d.name, true
}

// Required reports whether the parse fails when the argument is neither given
// nor defaulted.
func (d *Descriptor) Required() bool { return d.required && d.def == nil }

// RequiresValue reports whether an option consumes the argument following it.
func (d *Descriptor) RequiresValue() bool {
	return d.token.Kind == Option && d.requiresValue
}

// Default returns the raw default value, if there is one.
func (d *Descriptor) Default() (string, bool) {
	if d.def == nil {
		return "", false
	}
	return *d.def, true
}

func (d *Descriptor) String() string {
	if d.name != "" {
		return d.name
	}
	return d.token.String()
}

type Usage struct {
	Switches  []string
	Arguments []string
	Help      string
}

// Usage describes the argument for help output, using the default prefixes.
func (d *Descriptor) Usage() Usage {
	return d.usage(defaultLongPrefix, defaultShortPrefix)
}

func (d *Descriptor) usage(long, short string) (u Usage) {
	switch d.Kind() {
	case Positional:
		u.Arguments = append(u.Arguments, d.name)
	default:
		if _, ok := d.NegatedName(); ok {
			u.Switches = append(u.Switches, long+"[no-]"+d.name)
		} else {
			u.Switches = append(u.Switches, long+d.name)
		}
		if d.short != 0 {
			u.Switches = append(u.Switches, short+string(d.short))
		}
		if d.RequiresValue() {
			u.Arguments = append(u.Arguments, d.valueTypeName())
		}
	}
	if d.repeated && len(u.Arguments) != 0 {
		u.Arguments[len(u.Arguments)-1] += "..."
	}
	u.Help = d.help
	if d.def != nil && d.Kind() != Switch {
		if u.Help != "" {
			u.Help += " "
		}
		u.Help += fmt.Sprintf("(default %q)", *d.def)
	}
	return
}

func (d *Descriptor) valueTypeName() string {
	if d.defValue != nil {
		t := reflect.TypeOf(d.defValue)
		if d.repeated && t.Kind() == reflect.Slice {
			t = t.Elem()
		}
		return t.String()
	}
	return "value"
}
