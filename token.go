package argsparser

import "fmt"

// Kind is the kind of a registered argument.
type Kind uint8

const (
	// Null is the kind of the token returned when nothing was found.
	Null Kind = iota
	Positional
	Switch
	Option
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Positional:
		return "positional"
	case Switch:
		return "switch"
	case Option:
		return "option"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token identifies a registered argument. Tokens are handed out by the
// registration methods and can be used to retrieve arguments and their parsed
// values without looking them up by name again. They are comparable with ==.
type Token struct {
	Kind     Kind
	Position uint16
}

// NullToken is the zero Token, returned when a lookup finds nothing.
var NullToken = Token{}

// Valid reports whether t refers to a registered argument.
func (t Token) Valid() bool {
	return t.Kind != Null
}

// OrElse returns t if it is valid, and other otherwise.
func (t Token) OrElse(other Token) Token {
	return FirstValid(t, other)
}

func (t Token) String() string {
	if !t.Valid() {
		return "null"
	}
	return fmt.Sprintf("%v#%d", t.Kind, t.Position)
}

// FirstValid returns the first of the given tokens that is valid, or NullToken.
func FirstValid(tokens ...Token) Token {
	for _, t := range tokens {
		if t.Valid() {
			return t
		}
	}
	return NullToken
}
