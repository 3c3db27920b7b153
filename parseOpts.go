package cmdlinearg

// Sets the characters that may separate an option from a value in the same
// argument, as in "--count=4". Passing only '\x00' disables delimiters.
func Delimiters(delims ...byte) parseOpt {
	return func(r *Registry) {
		r.delims = r.delims[:0]
		for _, d := range delims {
			if d != 0 {
				r.delims = append(r.delims, d)
			}
		}
	}
}

// Options can't be separated from their values except by a separate
// argument, or for short options, by immediately following them.
func NoDelimiters() parseOpt {
	return Delimiters(0)
}

// Option spellings longer than this never match. The default is 64.
func MaxSpellingLength(n int) parseOpt {
	return func(r *Registry) {
		r.maxSpellingLength = n
	}
}

// Search options in the reverse of the order they were registered, matching
// older behaviour where the last registered of two ambiguous options won.
func ReverseOrder() parseOpt {
	return func(r *Registry) {
		r.reverse = true
	}
}
