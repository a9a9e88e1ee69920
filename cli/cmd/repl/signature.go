package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dumasoft/fcalc/calc"
)

// callContext describes the innermost unclosed function call around the
// cursor.
type callContext struct {
	name     string
	argIndex int
	inCall   bool
}

// detectFunctionCall finds the innermost function call enclosing the
// cursor, along with the zero-based index of the argument under it.
func detectFunctionCall(input string, cursor int) callContext {
	if cursor > len(input) {
		cursor = len(input)
	}

	type frame struct {
		name     string
		argIndex int
	}

	var stack []frame

	for i := 0; i < cursor; i++ {
		switch input[i] {
		case '(':
			stack = append(stack, frame{name: identBefore(input, i)})

		case ')':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case ',':
			if len(stack) > 0 {
				stack[len(stack)-1].argIndex++
			}
		}
	}

	// Walk down to the innermost frame that is an actual call, skipping
	// grouping parens.
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].name != "" {
			return callContext{
				name:     stack[i].name,
				argIndex: stack[i].argIndex,
				inCall:   true,
			}
		}
	}

	return callContext{}
}

// identBefore returns the identifier ending at byte offset pos, or the
// empty string when pos is not preceded by one.
func identBefore(input string, pos int) string {
	end := pos
	start := end

	for start > 0 {
		c := input[start-1]
		if c != '_' &&
			(c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') {
			break
		}

		start--
	}

	// Identifiers cannot start with a digit.
	for start < end && input[start] >= '0' && input[start] <= '9' {
		start++
	}

	return input[start:end]
}

// paramLetters name positional parameters in signature hints.
var paramLetters = []string{"x", "y", "z", "w"}

// signatureParams builds the display parameter list for a builtin
// function, or nil when name is not one. Optional parameters carry a
// "?" suffix and variadic tails render as "...".
func signatureParams(name string) []string {
	min, max, ok := calc.Arity(name)
	if !ok {
		return nil
	}

	letter := func(i int) string {
		if i < len(paramLetters) {
			return paramLetters[i]
		}

		return "x" + strings.Repeat("'", i-len(paramLetters)+1)
	}

	var params []string

	for i := 0; i < min; i++ {
		params = append(params, letter(i))
	}

	switch {
	case max < 0:
		params = append(params, "...")

	default:
		for i := min; i < max; i++ {
			params = append(params, letter(i)+"?")
		}
	}

	return params
}

// renderSignatureHint renders "name(x, y)" with the parameter at
// argIndex highlighted. A variadic tail stays highlighted for every
// argument past it.
func renderSignatureHint(name string, params []string, argIndex int) string {
	active := argIndex
	if active >= len(params) {
		active = len(params) - 1

		// Highlight past the end only for a variadic tail.
		if len(params) == 0 || params[active] != "..." {
			active = -1
		}
	}

	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true).
		Underline(true)

	var b strings.Builder

	b.WriteString(hintStyle.Render(name + "("))

	for i, p := range params {
		if i > 0 {
			b.WriteString(hintStyle.Render(", "))
		}

		if i == active {
			b.WriteString(activeStyle.Render(p))
		} else {
			b.WriteString(hintStyle.Render(p))
		}
	}

	b.WriteString(hintStyle.Render(")"))

	return b.String()
}
