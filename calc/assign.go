package calc

import "strings"

// IsValidIdentifier reports whether name is a valid assignment target:
// non-empty, starting with an ASCII letter or underscore, with any
// remaining characters alphanumeric or underscore. Builtin names are
// deliberately not rejected; assigning to one shadows it.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// SplitAssign reports whether the input has assignment form and, if so,
// splits it into the candidate identifier and the value expression. The
// input is sanitized first; the split is on the first "=". A "=" that
// forms part of a comparison operator ("==", "!=", "<=", ">=") makes
// the whole string an expression instead, routed to Evaluate by the
// caller.
func SplitAssign(expr string) (name, value string, ok bool) {
	s := Sanitize(expr)
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return "", "", false
	}
	if i+1 < len(s) && s[i+1] == '=' {
		return "", "", false
	}
	if i > 0 && strings.IndexByte("!<>", s[i-1]) >= 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// Assign recognizes the "name = expr" form, validates the identifier,
// and evaluates the value expression with the given variable table. On
// success it reports the binding for the caller to store; Assign itself
// never mutates vars. ok is false when the input is not an assignment
// at all, in which case the caller should treat it as an expression.
func Assign(expr string, vars map[string]float64) (name string, val float64, ok bool, err error) {
	name, rhs, ok := SplitAssign(expr)
	if !ok {
		return "", 0, false, nil
	}
	if !IsValidIdentifier(name) {
		return "", 0, true, &IdentError{Name: name}
	}
	val, err = Evaluate(rhs, vars)
	if err != nil {
		return name, 0, true, err
	}
	return name, val, true, nil
}
