package cmdlinearg

// A set of options bound to variables, and the settings used to match them
// against arguments.
type Registry struct {
	descs []*descriptor

	delims            []byte
	maxSpellingLength int
	reverse           bool
}

func New(opts ...parseOpt) *Registry {
	r := &Registry{
		delims:            []byte(defaultDelimiters),
		maxSpellingLength: defaultMaxSpellingLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registers an option that sets the variable pointed to. The type of
// variable determines how many arguments the option takes and how they are
// converted. Any of the strings may be empty. With short and long both
// empty, the option receives positional arguments. def is applied after
// parsing if the option was never given.
func (r *Registry) Option(variable interface{}, short, long, help, def string) error {
	v, err := newValue(variable)
	if err != nil {
		return err
	}
	r.register(&descriptor{
		short: short,
		long:  long,
		help:  help,
		def:   def,
		value: v,
	})
	return nil
}

// Like Option but panics on error.
func (r *Registry) MustOption(variable interface{}, short, long, help, def string) {
	if err := r.Option(variable, short, long, help, def); err != nil {
		panic(err)
	}
}

// Duplicate spellings are permitted. The first in search order wins.
func (r *Registry) register(d *descriptor) {
	r.descs = append(r.descs, d)
}

// Calls f on each option in search order until f returns false.
func (r *Registry) each(f func(d *descriptor) (more bool)) {
	n := len(r.descs)
	for i := 0; i < n; i++ {
		d := r.descs[i]
		if r.reverse {
			d = r.descs[n-1-i]
		}
		if !f(d) {
			return
		}
	}
}

var noDefaultOption = &descriptor{value: noDefault{}}

// Returns the option that receives positional arguments.
func (r *Registry) findDefault() (ret *descriptor) {
	ret = noDefaultOption
	r.each(func(d *descriptor) bool {
		if d.isPositional() {
			ret = d
			return false
		}
		return true
	})
	return
}

// Finds the option named by s, with its leading dashes removed. The
// embedded value is returned if s contains one.
func (r *Registry) findArg(s string, short bool) (ret *descriptor, embedded string, hasEmbedded bool) {
	r.each(func(d *descriptor) bool {
		spelling := d.long
		if short {
			spelling = d.short
		}
		var ok bool
		embedded, hasEmbedded, ok = r.match(s, spelling, short)
		if ok {
			ret = d
			return false
		}
		return true
	})
	return
}

// Failures are ignored: the variable keeps whatever value it had.
func (r *Registry) applyDefaults() {
	r.each(func(d *descriptor) bool {
		if !d.seen && d.def != "" {
			d.set(defaultArgs(d, d.def)...)
		}
		return true
	})
}
