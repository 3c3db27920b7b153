package cmdlinearg

type parseOpt func(r *Registry)

const (
	defaultMaxSpellingLength = 64
	defaultDelimiters        = "=:"
)
