package cmdlinearg

import (
	"reflect"

	"golang.org/x/xerrors"
)

// Implemented by types that convert themselves from one argument.
type Marshaler interface {
	Marshal(in string) error
}

// Implemented by types that consume more than one argument each time their
// option occurs. MarshalArgs is passed exactly NumArgs arguments.
type ArgsMarshaler interface {
	NumArgs() int
	MarshalArgs(args []string) error
}

// What an option does with its arguments. There's one implementation per
// kind of variable an option can be bound to.
type value interface {
	// Given arity() arguments, or one for presence flags and defaults.
	marshal(args []string) error
	arity() int
}

// Set true by presence.
type boolValue struct {
	v reflect.Value
	m marshalFunc
}

func (me boolValue) marshal(args []string) error { return me.m(me.v, args[0]) }
func (boolValue) arity() int                     { return 0 }

type scalarValue struct {
	v reflect.Value
	m marshalFunc
}

func (me scalarValue) marshal(args []string) error { return me.m(me.v, args[0]) }
func (scalarValue) arity() int                     { return 1 }

// Appends one element per occurrence.
type sliceValue struct {
	v    reflect.Value
	elem marshalFunc
}

func (me sliceValue) marshal(args []string) error {
	n := reflect.New(me.v.Type().Elem())
	err := me.elem(n.Elem(), args[0])
	if err != nil {
		return err
	}
	me.v.Set(reflect.Append(me.v, n.Elem()))
	return nil
}

func (sliceValue) arity() int { return 1 }

type argsValue struct {
	m ArgsMarshaler
}

func (me argsValue) marshal(args []string) error {
	if len(args) != me.m.NumArgs() {
		return xerrors.Errorf("wants %d arguments, got %d", me.m.NumArgs(), len(args))
	}
	return me.m.MarshalArgs(args)
}

func (me argsValue) arity() int { return me.m.NumArgs() }

// Stands in for the positional option when none was registered.
type noDefault struct{}

var errNoPositional = xerrors.New("no positional arguments expected")

func (noDefault) marshal([]string) error { return errNoPositional }
func (noDefault) arity() int             { return 0 }

func newValue(variable interface{}) (value, error) {
	pv := reflect.ValueOf(variable)
	if pv.Kind() != reflect.Ptr || pv.IsNil() {
		return nil, logicError{"variable must be a non-nil pointer"}
	}
	if am, ok := variable.(ArgsMarshaler); ok {
		if am.NumArgs() < 1 {
			return nil, logicError{"ArgsMarshaler must take at least one argument"}
		}
		return argsValue{am}, nil
	}
	v := pv.Elem()
	t := v.Type()
	if t.Kind() == reflect.Bool && customMarshaler(t) == nil {
		return boolValue{v, typeMarshaler(t)}, nil
	}
	if m := typeMarshaler(t); m != nil {
		return scalarValue{v, m}, nil
	}
	if t.Kind() == reflect.Slice {
		if elem := typeMarshaler(t.Elem()); elem != nil {
			return sliceValue{v, elem}, nil
		}
	}
	return nil, logicError{"can't set type " + fullTypeName(t)}
}

func fullTypeName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return `"` + t.PkgPath() + `".` + t.Name()
}
