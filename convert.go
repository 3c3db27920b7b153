package cmdlinearg

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

var (
	errNoNumber = xerrors.New("no number")
	errOverflow = xerrors.New("out of range")
	errNotBool  = xerrors.New("not a boolean")
)

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "enable":
		return true, nil
	case "0", "false", "no", "disable":
		return false, nil
	}
	return false, xerrors.Errorf("parsing %q: %w", s, errNotBool)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// Scans the leading integer in s the way strtol does with base 0: leading
// space, an optional sign, then hex after "0x", octal after "0", otherwise
// decimal. Trailing junk is ignored. The magnitude saturates at MaxUint64.
func scanInteger(s string) (neg bool, mag uint64, overflow bool, ok bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	base := uint64(10)
	if i < len(s) && s[i] == '0' {
		ok = true
		base = 8
		i++
		if i+1 < len(s) && (s[i] == 'x' || s[i] == 'X') && digitVal(s[i+1]) < 16 {
			base = 16
			i++
		}
	}
	for ; i < len(s); i++ {
		d := uint64(digitVal(s[i]))
		if d >= base {
			break
		}
		ok = true
		if mag > (math.MaxUint64-d)/base {
			overflow = true
			mag = math.MaxUint64
			continue
		}
		mag = mag*base + d
	}
	return
}

func parseInt(s string, bitSize int) (int64, error) {
	neg, mag, overflow, ok := scanInteger(s)
	if !ok {
		return 0, xerrors.Errorf("parsing %q: %w", s, errNoNumber)
	}
	limit := uint64(1) << uint(bitSize-1)
	if overflow || (!neg && mag >= limit) || (neg && mag > limit) {
		return 0, xerrors.Errorf("parsing %q as %d bit integer: %w", s, bitSize, errOverflow)
	}
	if neg {
		return -int64(mag), nil
	}
	return int64(mag), nil
}

func parseUint(s string, bitSize int) (uint64, error) {
	neg, mag, overflow, ok := scanInteger(s)
	if !ok {
		return 0, xerrors.Errorf("parsing %q: %w", s, errNoNumber)
	}
	if neg && mag != 0 {
		return 0, xerrors.Errorf("parsing %q as unsigned: %w", s, errOverflow)
	}
	if overflow || (bitSize < 64 && mag >= uint64(1)<<uint(bitSize)) {
		return 0, xerrors.Errorf("parsing %q as %d bit unsigned integer: %w", s, bitSize, errOverflow)
	}
	return mag, nil
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isHexDigit(c byte) bool {
	return digitVal(c) < 16
}

// Returns the bounds of the floating point literal that s starts with, after
// any leading space, in the manner of strtod. start == end if there is none.
// hex is set for literals with a 0x prefix.
func scanFloat(s string) (start, end int, hex bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start = i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	rest := s[i:]
	switch {
	case hasFoldPrefix(rest, "infinity"):
		return start, i + len("infinity"), false
	case hasFoldPrefix(rest, "inf"), hasFoldPrefix(rest, "nan"):
		return start, i + 3, false
	}
	if e := scanHexFloat(rest); e != 0 {
		return start, i + e, true
	}
	digits := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return start, start, false
	}
	return start, i + scanExponent(s[i:], 'e'), false
}

// Returns the length of the hex literal at the start of s, like 0x1.8p3, or
// zero if there isn't one with at least one significand digit.
func scanHexFloat(s string) int {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0
	}
	i := 2
	digits := 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isHexDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	return i + scanExponent(s[i:], 'p')
}

// Returns the length of the exponent at the start of s, introduced by the
// letter e in either case, or zero if it has no digits.
func scanExponent(s string, e byte) int {
	if len(s) == 0 || (s[0] != e && s[0] != e-'a'+'A') {
		return 0
	}
	j := 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	k := j
	for k < len(s) && '0' <= s[k] && s[k] <= '9' {
		k++
	}
	if k == j {
		return 0
	}
	return k
}

func parseFloat(s string, bitSize int) (float64, error) {
	start, end, hex := scanFloat(s)
	if end == start {
		return 0, xerrors.Errorf("parsing %q: %w", s, errNoNumber)
	}
	lit := s[start:end]
	if hasFoldPrefix(strings.TrimLeft(lit, "+-"), "nan") {
		// ParseFloat doesn't take a sign on NaN.
		return math.NaN(), nil
	}
	if hex && !strings.ContainsAny(lit, "pP") {
		lit += "p0"
	}
	f, err := strconv.ParseFloat(lit, bitSize)
	if err != nil {
		var ne *strconv.NumError
		if xerrors.As(err, &ne) && ne.Err == strconv.ErrRange {
			// Saturates to ±Inf or rounds to zero, like strtof.
			return f, nil
		}
		return 0, xerrors.Errorf("parsing %q: %w", s, err)
	}
	return f, nil
}
