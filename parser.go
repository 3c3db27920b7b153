package cmdlinearg

import (
	"strings"

	"github.com/bradfitz/iter"
)

type parser struct {
	r      *Registry
	args   *tokenQueue
	defOpt *descriptor
}

// Sets variables from args, which shouldn't include the program name.
// Parsing stops at the first error, which is an *Error. Variables set
// before it keep their values. Defaults are applied only on success.
func (r *Registry) Parse(args []string) error {
	p := parser{
		r:      r,
		args:   newTokenQueue(args),
		defOpt: r.findDefault(),
	}
	for p.args.Len() != 0 {
		if err := p.parseAny(); err != nil {
			return err
		}
	}
	r.applyDefaults()
	return nil
}

func (p *parser) parseAny() error {
	a, _ := p.args.popFront()
	switch {
	case a == "":
		return nil
	case a == "-":
		return p.parseRest()
	case strings.HasPrefix(a, "-"):
		return p.parseFlag(a)
	default:
		if err := p.defOpt.set(a); err != nil {
			return invalidValue(positionalOperand, a, err)
		}
		return nil
	}
}

// Everything after a lone "-" is positional.
func (p *parser) parseRest() error {
	for p.args.Len() != 0 {
		a, _ := p.args.popFront()
		if err := p.defOpt.set(a); err != nil {
			return invalidValue("-", a, err)
		}
	}
	return nil
}

func (p *parser) parseFlag(op string) error {
	var (
		d           *descriptor
		embedded    string
		hasEmbedded bool
	)
	if strings.HasPrefix(op, "--") {
		d, embedded, hasEmbedded = p.r.findArg(op[2:], false)
	} else {
		d, embedded, hasEmbedded = p.r.findArg(op[1:], true)
	}
	if d == nil {
		return unknownOption(op)
	}
	if hasEmbedded {
		p.args.pushFront(embedded)
	}
	n := d.arity()
	if n == 0 {
		if err := d.set("true"); err != nil {
			return invalidValue(op, "true", err)
		}
		return nil
	}
	if p.args.Len() < n {
		return invalidValue(op, "", ErrMissingValue)
	}
	vals := make([]string, 0, n)
	for range iter.N(n) {
		v, _ := p.args.popFront()
		vals = append(vals, v)
	}
	if err := d.set(vals...); err != nil {
		return invalidValue(op, strings.Join(vals, " "), err)
	}
	return nil
}

// The arguments a default is set from. Options taking several arguments
// have them separated by spaces in their default.
func defaultArgs(d *descriptor, def string) []string {
	if d.arity() > 1 {
		return strings.Fields(def)
	}
	return []string{def}
}
