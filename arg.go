package cmdlinearg

import (
	"reflect"
)

// One registered option. An empty spelling is absent. With both spellings
// absent, the option receives the positional arguments.
type descriptor struct {
	short string
	long  string
	help  string
	// The default as it would appear on the command line. Empty for none.
	def   string
	seen  bool
	value value
}

func (me *descriptor) isPositional() bool {
	return me.short == "" && me.long == ""
}

// Sets the variable. seen is only set on success.
func (me *descriptor) set(args ...string) error {
	err := me.value.marshal(args)
	if err != nil {
		return err
	}
	me.seen = true
	return nil
}

func (me *descriptor) arity() int {
	return me.value.arity()
}

func hasZeroValue(v reflect.Value) bool {
	return reflect.DeepEqual(
		reflect.Zero(v.Type()).Interface(),
		v.Interface())
}
