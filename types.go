package cmdlinearg

import (
	"encoding"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"golang.org/x/xerrors"
)

// Sets settee from a single argument. settee is left alone on error.
type marshalFunc func(settee reflect.Value, arg string) error

var typeMarshalFuncs = map[reflect.Type]marshalFunc{}

// f is a func(string) (T, error), and is used for values of type T.
func addMarshalFunc(f interface{}) {
	v := reflect.ValueOf(f)
	t := v.Type()
	setType := t.Out(0)
	typeMarshalFuncs[setType] = func(settee reflect.Value, arg string) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(arg)})
		if err, _ := out[1].Interface().(error); err != nil {
			return xerrors.Errorf("parsing %q as %s: %w", arg, setType, err)
		}
		settee.Set(out[0])
		return nil
	}
}

func init() {
	addMarshalFunc(func(urlStr string) (*url.URL, error) {
		return url.Parse(urlStr)
	})
	addMarshalFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addMarshalFunc(func(s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
	addMarshalFunc(func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, xerrors.New("bad IP address")
		}
		return ip, nil
	})
}

var (
	marshalerType       = reflect.TypeOf((*Marshaler)(nil)).Elem()
	argsMarshalerType   = reflect.TypeOf((*ArgsMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Returns a marshaler that the type provides itself, or that was registered
// for it explicitly.
func customMarshaler(t reflect.Type) marshalFunc {
	if f, ok := typeMarshalFuncs[t]; ok {
		return f
	}
	pt := reflect.PtrTo(t)
	if pt.Implements(marshalerType) {
		return func(v reflect.Value, s string) error {
			return v.Addr().Interface().(Marshaler).Marshal(s)
		}
	}
	if pt.Implements(textUnmarshalerType) {
		return func(v reflect.Value, s string) error {
			return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
		}
	}
	return nil
}

// Returns how to set a single value of type t from an argument, or nil if
// that isn't possible. Slices aren't single values unless they provide
// their own marshaler.
func typeMarshaler(t reflect.Type) marshalFunc {
	if f := customMarshaler(t); f != nil {
		return f
	}
	switch t.Kind() {
	case reflect.Bool:
		return func(v reflect.Value, s string) error {
			b, err := parseBool(s)
			if err != nil {
				return err
			}
			v.SetBool(b)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v reflect.Value, s string) error {
			i, err := parseInt(s, t.Bits())
			if err != nil {
				return err
			}
			v.SetInt(i)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v reflect.Value, s string) error {
			u, err := parseUint(s, t.Bits())
			if err != nil {
				return err
			}
			v.SetUint(u)
			return nil
		}
	case reflect.Float32, reflect.Float64:
		return func(v reflect.Value, s string) error {
			f, err := parseFloat(s, t.Bits())
			if err != nil {
				return err
			}
			v.SetFloat(f)
			return nil
		}
	case reflect.String:
		return func(v reflect.Value, s string) error {
			v.SetString(s)
			return nil
		}
	}
	return nil
}

// Renders v as an argument that converts back to the same value.
func FormatValue(v interface{}) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return ""
	}
	if customMarshaler(rv.Type()) != nil {
		switch m := v.(type) {
		case encoding.TextMarshaler:
			b, err := m.MarshalText()
			if err == nil {
				return string(b)
			}
		case fmt.Stringer:
			return m.String()
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v)
}
