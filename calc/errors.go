package calc

import "strconv"

// InputError is an error with position information. Every error produced
// while scanning or parsing an expression implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error,
	// counted in the sanitized input.
	Pos() int
}

// ValidationError indicates input containing characters outside the
// allow-list accepted by IsSafe. It is returned before any parsing is
// attempted.
type ValidationError struct {
	// Expr is the sanitized input that was rejected.
	Expr string
}

func (err *ValidationError) Error() string {
	return "expression contains unsafe characters"
}

// SyntaxError indicates a malformed expression.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the text of the offending token, if any.
	Token string
	// Msg describes the fault. If empty, a generic message is used.
	Msg string
}

func (err *SyntaxError) Error() string {
	msg := err.Msg
	switch {
	case msg != "" && err.Token != "":
		msg += " " + strconv.Quote(err.Token)
	case msg == "" && err.Token != "":
		msg = "unexpected token " + strconv.Quote(err.Token)
	case msg == "":
		msg = "unexpected end of expression"
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Pos() int { return err.Col }

// BracketError indicates mismatched or unbalanced brackets.
type BracketError struct {
	// Col is the position where the mismatch was detected.
	Col int
	// Open is the opening bracket, or empty if a close bracket had no
	// matching open bracket.
	Open string
	// Close is the closing bracket, or empty if an open bracket was
	// never closed.
	Close string
}

func (err *BracketError) Error() string {
	if err.Open == "" {
		return errpos(err.Col, "close bracket "+err.Close+" with no open bracket")
	}
	if err.Close == "" {
		return errpos(err.Col, "open bracket "+err.Open+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Open+"expr"+err.Close)
}

func (err *BracketError) Pos() int { return err.Col }

// DepthError indicates an expression nested more deeply than MaxDepth.
// The bound exists so pathological input fails with an error instead of
// exhausting the stack.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// Limit is the maximum nesting depth.
	Limit int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nesting exceeds "+strconv.Itoa(err.Limit)+" levels")
}

func (err *DepthError) Pos() int { return err.Col }

// NameError indicates a reference to an identifier that is present in
// neither the variable table nor the builtin table.
type NameError struct {
	// Name is the identifier that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined name: " + strconv.Quote(err.Name)
}

// CallError indicates a function call that cannot be performed: a call
// with an argument count the function does not accept, a call of a name
// that is not a function, or a bare function name used as a value.
type CallError struct {
	// Func is the name that was called or referenced.
	Func string
	// Args is the number of arguments supplied, or -1 when a function
	// name was referenced without being called.
	Args int
	// Value indicates the name resolved to a number rather than a
	// function.
	Value bool
}

func (err *CallError) Error() string {
	switch {
	case err.Value:
		return "cannot call " + strconv.Quote(err.Func) + ": not a function"
	case err.Args < 0:
		return strconv.Quote(err.Func) + " is a function, not a value"
	default:
		return "cannot call " + err.Func + " with " + strconv.Itoa(err.Args) + " arguments"
	}
}

// DomainError indicates arguments that are syntactically valid but
// mathematically undefined for the requested operation.
type DomainError struct {
	// Func is the function or operator that rejected its input.
	Func string
	// X is the offending argument, when a single argument is at fault.
	X float64
	// Reason overrides the default message when set.
	Reason string
}

func (err *DomainError) Error() string {
	if err.Reason != "" {
		return err.Func + ": " + err.Reason
	}
	return err.Func + ": argument " + strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
}

// IdentError indicates an invalid assignment target.
type IdentError struct {
	// Name is the rejected identifier.
	Name string
}

func (err *IdentError) Error() string {
	if err.Name == "" {
		return "empty identifier in assignment"
	}
	return "invalid identifier: " + strconv.Quote(err.Name)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*DepthError)(nil)
)
