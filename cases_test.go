package cmdlinearg

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      error
	expected interface{}
}

func noErrorCase(expected interface{}, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

// Returns a pointer to fresh variables, and a Registry that decodes into
// them.
type cmdFactory func() (cmd interface{}, r *Registry, err error)

// Registers the fields of each struct newCmd returns.
func structCmd(newCmd func() interface{}, opts ...parseOpt) cmdFactory {
	return func() (interface{}, *Registry, error) {
		cmd := newCmd()
		r := New(opts...)
		return cmd, r, r.Struct(cmd)
	}
}

func (me parseCase) Run(t *testing.T, newCmd cmdFactory) {
	t.Helper()
	cmd, r, err := newCmd()
	if err == nil {
		err = r.Parse(me.args)
	}
	if me.err != nil {
		assert.EqualValues(t, me.err, err, "%q", me.args)
		return
	}
	if assert.NoError(t, err, "%q", me.args) {
		assert.EqualValues(t, me.expected, reflect.ValueOf(cmd).Elem().Interface(), "%q", me.args)
	}
}

func RunCases(t *testing.T, cases []parseCase, newCmd cmdFactory) {
	t.Helper()
	for _, _case := range cases {
		_case.Run(t, newCmd)
	}
}
