package argsparser

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/huandu/xstrings"
)

var ErrInvalidTarget = errors.New("target must be a pointer to a struct")

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// Binding ties arguments registered by RegisterStruct to the struct fields
// they came from.
type Binding struct {
	target reflect.Value
	fields []boundField
}

type boundField struct {
	index int
	token Token
}

// Tokens returns the registered tokens in field order.
func (b *Binding) Tokens() (ret []Token) {
	for _, f := range b.fields {
		ret = append(ret, f.token)
	}
	return
}

// RegisterStruct registers an argument for each exported field of the struct
// target points to. Names are the field names in kebab case. Fields are
// options taking a value unless tagged arg:"positional", or skipped with
// arg:"-". Bool fields are negatable switches. Slice fields are repeated,
// collecting a value per occurrence, unless the slice type unmarshals text
// itself. Other tags are help, default, short, and arity, which is "?" or "*"
// for optional and "+" for required. Fields registered before a failing one
// stay registered.
func (r *Registry) RegisterStruct(target interface{}) (*Binding, error) {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}
	value = value.Elem()
	type_ := value.Type()
	b := &Binding{target: value}
	for i := 0; i < type_.NumField(); i++ {
		structField := type_.Field(i)
		argTag := structField.Tag.Get("arg")
		if argTag == "-" || !structField.IsExported() {
			continue
		}
		t, err := r.registerField(structField, argTag == "positional")
		if err != nil {
			return b, fmt.Errorf("registering %v.%v: %w", type_.Name(), structField.Name, err)
		}
		b.fields = append(b.fields, boundField{index: i, token: t})
	}
	return b, nil
}

func (r *Registry) registerField(structField reflect.StructField, positional bool) (Token, error) {
	name := xstrings.ToKebabCase(structField.Name)
	var opts []ParamOpt
	if help := structField.Tag.Get("help"); help != "" {
		opts = append(opts, Help(help))
	}
	if default_, ok := structField.Tag.Lookup("default"); ok {
		opts = append(opts, Default(default_))
	}
	if short := structField.Tag.Get("short"); short != "" {
		c, size := utf8.DecodeRuneInString(short)
		if size != len(short) {
			return NullToken, fmt.Errorf("%w: short alias %q", ErrInvalidName, short)
		}
		opts = append(opts, Short(c))
	}
	switch arity := structField.Tag.Get("arity"); arity {
	case "":
	case "?", "*":
		opts = append(opts, Optional())
	case "+":
		opts = append(opts, Required())
	default:
		return NullToken, fmt.Errorf("unhandled arity %q", arity)
	}
	switch structField.Type {
	case reflect.TypeOf(false), reflect.TypeOf((*bool)(nil)):
		if !positional {
			return r.RegisterSwitch(name, append(opts, Negatable())...)
		}
	}
	valueType := structField.Type
	if valueType.Kind() == reflect.Slice && !reflect.PointerTo(valueType).Implements(textUnmarshalerType) {
		valueType = valueType.Elem()
		opts = append(opts, Repeated())
	}
	opts = append(opts, Convert(unmarshalConverter(valueType)))
	if positional {
		return r.RegisterPositional(name, opts...)
	}
	return r.RegisterOption(name, true, opts...)
}

// Apply copies the values in effect in res into the bound fields. Fields
// without a value are left alone.
func (b *Binding) Apply(res *Result) error {
	for _, f := range b.fields {
		v, ok := res.Value(f.token)
		if !ok {
			continue
		}
		field := b.target.Field(f.index)
		rv := reflect.ValueOf(v)
		switch {
		case rv.Type().AssignableTo(field.Type()):
			field.Set(rv)
		case field.Kind() == reflect.Ptr && rv.Type().AssignableTo(field.Type().Elem()):
			ptr := reflect.New(field.Type().Elem())
			ptr.Elem().Set(rv)
			field.Set(ptr)
		default:
			return fmt.Errorf("setting %v: %w: have %v, want %v",
				b.target.Type().Field(f.index).Name, ErrTypeMismatch, rv.Type(), field.Type())
		}
	}
	return nil
}
