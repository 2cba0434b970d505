package argsparser

import (
	"fmt"
	"sort"
	"strings"
)

// OneOf returns a Validator accepting only the given choices.
func OneOf(choices ...string) Validator {
	valid := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		valid[c] = struct{}{}
	}
	help := strings.Join(choices, "|")
	return func(value string) error {
		if _, ok := valid[value]; !ok {
			return fmt.Errorf("invalid choice %q: %v", value, help)
		}
		return nil
	}
}

// Choices returns a Converter producing the value mapped to the given raw
// choice. Anything else fails conversion.
func Choices[T any](choices map[string]T) Converter {
	names := make([]string, 0, len(choices))
	for name := range choices {
		names = append(names, name)
	}
	sort.Strings(names)
	help := strings.Join(names, "|")
	return func(raw string) (interface{}, error) {
		v, ok := choices[raw]
		if !ok {
			return nil, fmt.Errorf("invalid choice %q: %v", raw, help)
		}
		return v, nil
	}
}
