package calc

import (
	"strings"
	"unicode"
)

// safeSymbols are the non-alphanumeric characters accepted by IsSafe.
// The set intentionally matches the input shorthand the callers may
// produce: "^" for exponentiation, "==" from the comparison shortcut,
// and a single "=" for assignment.
const safeSymbols = "+-*/%().,!^&=<>|~"

// Sanitize normalizes raw formula input. All whitespace is removed,
// anywhere in the string, and the full-width bracket glyphs （ and ）
// are replaced with ( and ). No other transformation is applied; in
// particular, case is preserved.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
		case r == '（':
			b.WriteByte('(')
		case r == '）':
			b.WriteByte(')')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsSafe reports whether s consists entirely of allowed characters:
// decimal digits, ASCII letters, and the symbols in safeSymbols. The
// empty string is not safe. This check runs strictly before parsing;
// a rejected string never reaches the evaluator.
func IsSafe(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
		case 'a' <= r && r <= 'z':
		case 'A' <= r && r <= 'Z':
		case strings.ContainsRune(safeSymbols, r):
		default:
			return false
		}
	}
	return true
}
