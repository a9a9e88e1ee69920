// Package calc evaluates restricted arithmetic formulas.
//
// An input string passes through three stages. Sanitize removes all
// whitespace and maps full-width bracket glyphs to their ASCII
// equivalents. IsSafe rejects any string containing a character outside
// a fixed allow-list before parsing is attempted. The parser then builds
// an expression tree which is evaluated against a closed lookup scope:
// the builtin function and constant table merged with a caller-supplied
// variable table, variables taking precedence.
//
// The merged scope is the only name resolution path. There is no access
// to anything beyond the builtin table and the variables the caller
// passes in, so a formula can compute numbers and nothing else. Callers
// that want user-defined variables keep their own map[string]float64 and
// pass it to each call; the package never mutates it.
//
// Assignment input of the form "name = expr" is recognized by Assign,
// which validates the identifier, evaluates the right-hand side, and
// reports the binding for the caller to store.
package calc
