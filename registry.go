package argsparser

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const negatedPrefix = "no-"

// Registry owns the registered arguments. Switches and options share one
// namespace of long names, negated switch names and short aliases. A one
// character long name counts as taken by a short alias of the same character,
// and the other way around. The zero value is ready to use.
type Registry struct {
	byKind  [Option + 1][]*Descriptor
	long    map[string]Token
	negated map[string]Token
	short   map[rune]Token
	// Set once parsing starts.
	sealed bool
}

func (r *Registry) register(kind Kind, d *Descriptor, opts []ParamOpt) (Token, error) {
	if r.sealed {
		return NullToken, fmt.Errorf("registering %v %q: %w", kind, d.name, ErrRegistrationClosed)
	}
	for _, opt := range opts {
		opt(d)
	}
	if len(r.byKind[kind]) > math.MaxUint16 {
		return NullToken, fmt.Errorf("registering %v %q: %w", kind, d.name, ErrTooManyArguments)
	}
	if kind != Switch {
		d.negatable = false
	}
	if kind != Positional {
		if err := r.checkNames(d); err != nil {
			return NullToken, err
		}
		if d.convert == nil && (kind == Switch || !d.requiresValue) {
			d.convert = Bool
		}
		if kind == Switch && d.def == nil {
			off := "false"
			d.def = &off
		}
	}
	if d.def != nil {
		d.defValue = *d.def
		if d.convert != nil {
			v, err := d.convert.call(*d.def)
			if err != nil {
				return NullToken, fmt.Errorf("%w %q for %v: %v", ErrInvalidDefault, *d.def, d.name, err)
			}
			d.defValue = v
		}
		if d.repeated {
			d.defValue = appendValue(nil, d.defValue)
		}
	}
	d.token = Token{Kind: kind, Position: uint16(len(r.byKind[kind]))}
	r.byKind[kind] = append(r.byKind[kind], d)
	if kind != Positional {
		if r.long == nil {
			r.long = make(map[string]Token)
			r.negated = make(map[string]Token)
			r.short = make(map[rune]Token)
		}
		r.long[d.name] = d.token
		if neg, ok := d.NegatedName(); ok {
			r.negated[neg] = d.token
		}
		if d.short != 0 {
			r.short[d.short] = d.token
		}
	}
	return d.token, nil
}

func (r *Registry) checkNames(d *Descriptor) error {
	if d.name == "" || strings.HasPrefix(d.name, "-") || strings.ContainsAny(d.name, "= \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, d.name)
	}
	if d.short == '-' || d.short == '=' || unicode.IsSpace(d.short) {
		return fmt.Errorf("%w: alias %q of %v", ErrInvalidName, d.short, d.name)
	}
	if r.nameTaken(d.name) || r.lookupShort(d.name).Valid() {
		return &Failure{Kind: DuplicateRegistration, Arg: d.name}
	}
	if d.negatable && r.nameTaken(negatedPrefix+d.name) {
		return &Failure{Kind: DuplicateRegistration, Arg: negatedPrefix + d.name}
	}
	if d.short != 0 && (r.short[d.short].Valid() || r.nameTaken(string(d.short))) {
		return &Failure{Kind: DuplicateRegistration, Arg: string(d.short)}
	}
	return nil
}

func (r *Registry) nameTaken(name string) bool {
	return r.long[name].OrElse(r.negated[name]).Valid()
}

// Descriptor returns the argument registered under t.
func (r *Registry) Descriptor(t Token) (*Descriptor, bool) {
	if t.Kind == Null || int(t.Kind) >= len(r.byKind) {
		return nil, false
	}
	ds := r.byKind[t.Kind]
	if int(t.Position) >= len(ds) {
		return nil, false
	}
	return ds[t.Position], true
}

// Lookup returns the token of the switch or option with the given long name,
// falling back to negated switch names and then to a single character short
// alias. It returns NullToken if nothing matches. Positionals have no name
// lookup.
func (r *Registry) Lookup(name string) Token {
	return FirstValid(r.long[name], r.negated[name], r.lookupShort(name))
}

func (r *Registry) lookupShort(name string) Token {
	c, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) {
		return NullToken
	}
	return r.short[c]
}

// Positionals returns the positional arguments in order.
func (r *Registry) Positionals() []*Descriptor {
	return r.byKind[Positional]
}

func (r *Registry) each(f func(*Descriptor)) {
	for _, ds := range r.byKind {
		for _, d := range ds {
			f(d)
		}
	}
}

// Must returns t, or panics if err is not nil. It's for registrations that
// can only fail by programmer error.
func Must(t Token, err error) Token {
	if err != nil {
		panic(err)
	}
	return t
}
