package argsparser

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	Int      = Typed(strconv.Atoi)
	Float    = Typed(func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	Bool     = Typed(strconv.ParseBool)
	Duration = Typed(time.ParseDuration)
)

var builtinUnmarshallers = map[reflect.Type]func(s string, value interface{}) error{
	reflect.TypeOf((*time.Duration)(nil)): func(s string, value interface{}) error {
		d, err := time.ParseDuration(s)
		if err == nil {
			reflect.ValueOf(value).Elem().Set(reflect.ValueOf(d))
		}
		return err
	},
}

// Unmarshal returns a Converter producing T. It handles types implementing
// encoding.TextUnmarshaler through a pointer, strings, bools, integers,
// floats, time.Duration and pointers to those. A slice T gets a one element
// slice per raw value; to collect every occurrence, convert to the element
// type and register the argument Repeated.
func Unmarshal[T any]() Converter {
	return unmarshalConverter(reflect.TypeOf((*T)(nil)).Elem())
}

func unmarshalConverter(t reflect.Type) Converter {
	return func(raw string) (interface{}, error) {
		target := reflect.New(t)
		if err := unmarshalInto(raw, target.Interface()); err != nil {
			return nil, fmt.Errorf("unmarshalling %q into %v: %w", raw, t, err)
		}
		return target.Elem().Interface(), nil
	}
}

func unmarshalInto(s string, target interface{}) error {
	if u, ok := builtinUnmarshallers[reflect.TypeOf(target)]; ok {
		return u(s, target)
	}
	if tu, ok := target.(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	value := reflect.ValueOf(target).Elem()
	switch value.Kind() {
	case reflect.String:
		value.SetString(s)
	case reflect.Slice:
		x := reflect.New(value.Type().Elem())
		err := unmarshalInto(s, x.Interface())
		if err != nil {
			return fmt.Errorf("unmarshalling in to new element for %v: %w", value.Type(), err)
		}
		value.Set(reflect.Append(value, x.Elem()))
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		value.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetFloat(f)
	case reflect.Ptr:
		x := reflect.New(value.Type().Elem())
		if err := unmarshalInto(s, x.Interface()); err != nil {
			return err
		}
		value.Set(x)
	default:
		return fmt.Errorf("unhandled target type %v", value.Type())
	}
	return nil
}
