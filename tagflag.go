package cmdlinearg

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Parses args into the fields of the struct pointed to by cmd. See the
// package documentation for the tags that are understood.
func ParseErr(cmd interface{}, args []string, opts ...parseOpt) error {
	r := New(opts...)
	if err := r.Struct(cmd); err != nil {
		return err
	}
	return r.Parse(args)
}

// Parses the program's arguments into cmd. The program exits with status 0
// after printing help, or with status 2 if the arguments are bad.
func Parse(cmd interface{}, opts ...parseOpt) {
	r := New(opts...)
	if err := r.Struct(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "cmdlinearg: %s\n", err)
		os.Exit(1)
	}
	hc := HelpConfig{
		Output: os.Stderr,
		Usage:  fmt.Sprintf("Usage:\n  %s [OPTIONS...]", filepath.Base(os.Args[0])),
	}
	if r.ParseWithHelp(os.Args[1:], &hc) {
		if hc.Help {
			os.Exit(0)
		}
		os.Exit(2)
	}
}

// Registers an option for each exported field of the struct pointed to by
// cmd. Nested structs contribute their fields too.
func (r *Registry) Struct(cmd interface{}) error {
	if cmd == nil {
		return nil
	}
	v := reflect.ValueOf(cmd)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return logicError{fmt.Sprintf("expected pointer to struct, got %T", cmd)}
	}
	return r.addStruct(v.Elem())
}

func (r *Registry) addStruct(st reflect.Value) (err error) {
	foreachStructField(st, func(fv reflect.Value, sf reflect.StructField) (stop bool) {
		if sf.PkgPath != "" {
			return false
		}
		if isNestedCmd(fv.Type()) {
			err = r.addStruct(fv)
			return err != nil
		}
		err = r.addField(fv, sf)
		if err != nil {
			err = errors.Wrapf(err, "adding field %s.%s", st.Type(), sf.Name)
		}
		return err != nil
	})
	return
}

// Whether a struct typed field holds more options, rather than being the
// value of one.
func isNestedCmd(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	if reflect.PtrTo(t).Implements(argsMarshalerType) {
		return false
	}
	return customMarshaler(t) == nil
}

func (r *Registry) addField(fv reflect.Value, sf reflect.StructField) error {
	short := sf.Tag.Get("short")
	long := ""
	switch sf.Tag.Get("type") {
	case "pos":
		short = ""
	case "", "flag":
		long = structFieldFlag(sf)
	default:
		return logicError{fmt.Sprintf("bad type tag: %q", sf.Tag.Get("type"))}
	}
	if sf.Tag.Get("type") != "pos" && short == "" && long == "" {
		return logicError{"flag has no spelling"}
	}
	def, hasDef := sf.Tag.Lookup("default")
	// There's no single string form for an ArgsMarshaler to default from.
	if !hasDef && fv.Kind() != reflect.Slice && !hasZeroValue(fv) && !reflect.PtrTo(fv.Type()).Implements(argsMarshalerType) {
		def = FormatValue(fv.Interface())
	}
	return r.Option(fv.Addr().Interface(), short, long, sf.Tag.Get("help"), def)
}

// Turn a struct field name into a long option spelling, like TCPAddr into
// tcp-addr.
func fieldLongFlagKey(fieldName string) string {
	return strings.Replace(xstrings.ToSnakeCase(fieldName), "_", "-", -1)
}

func structFieldFlag(sf reflect.StructField) string {
	switch long := sf.Tag.Get("long"); long {
	case "-":
		return ""
	case "":
		return fieldLongFlagKey(sf.Name)
	default:
		return long
	}
}

// Calls f with each field of st in declaration order until f returns true.
func foreachStructField(st reflect.Value, f func(fv reflect.Value, sf reflect.StructField) (stop bool)) {
	for i := range iter.N(st.NumField()) {
		if f(st.Field(i), st.Type().Field(i)) {
			return
		}
	}
}
