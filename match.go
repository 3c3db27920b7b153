package cmdlinearg

import (
	"bytes"
)

func (r *Registry) isDelim(c byte) bool {
	return bytes.IndexByte(r.delims, c) != -1
}

// Reports whether the argument fragment z names an option spelled y. An
// empty y never matches. Short spellings match a prefix of z and the rest of
// z, less an optional leading delimiter, is the embedded value. Long
// spellings must be followed by the end of z, or a delimiter and the
// embedded value.
func (r *Registry) match(z, y string, short bool) (embedded string, hasEmbedded bool, ok bool) {
	if y == "" {
		return
	}
	i := 0
	for i < len(z) && i < len(y) && i < r.maxSpellingLength {
		if z[i] != y[i] {
			return
		}
		i++
	}
	if i < len(y) {
		return
	}
	rest := z[i:]
	if rest == "" {
		ok = true
		return
	}
	if short {
		if r.isDelim(rest[0]) {
			rest = rest[1:]
		}
		return rest, true, true
	}
	if r.isDelim(rest[0]) {
		return rest[1:], true, true
	}
	return
}
