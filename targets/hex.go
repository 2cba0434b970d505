// Package targets provides value types for arguments that need more than the
// builtin conversions.
package targets

import (
	"encoding"
	"encoding/hex"

	argsparser "github.com/RenanBasilio/ArgsParser"
)

// Hex is a byte string given in hexadecimal.
type Hex []byte

var (
	_ encoding.TextUnmarshaler = (*Hex)(nil)
	_ encoding.TextMarshaler   = Hex(nil)
)

// HexConverter converts arguments to Hex.
var HexConverter = argsparser.Unmarshal[Hex]()

func (h *Hex) UnmarshalText(text []byte) (err error) {
	*h, err = hex.DecodeString(string(text))
	return
}

func (h Hex) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h Hex) String() string {
	return hex.EncodeToString(h)
}
