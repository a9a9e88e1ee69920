package calc

import (
	"strconv"
	"strings"
)

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is a variable, constant, or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is the function argument separator.
	tokenSep
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.text + "@" + strconv.Itoa(t.pos)
}

// wideOps are the two-character operators. They are matched before the
// single-character operators so that "**" never lexes as two "*".
var wideOps = [...]string{"**", "//", "==", "!=", "<=", ">="}

// singleOps are the single-character operators. The validator admits all
// of these characters, though the parser only assigns meaning to a
// subset; the rest fail with a syntax error.
const singleOps = "+-*/%^<>=!&|~"

// lexer scans a sanitized expression. The input contains no whitespace
// and only allow-listed ASCII characters, so byte offsets are columns.
type lexer struct {
	src string
	off int
	p   token
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok token) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

func (l *lexer) next() (token, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = token{}
		return tok, nil
	}
	tok := token{pos: l.off + 1}
	if l.off >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	c := l.src[l.off]
	switch {
	case '0' <= c && c <= '9', c == '.':
		return l.scanNum()
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_':
		return l.scanIdent()
	case c == '(':
		l.off++
		tok.text, tok.kind = "(", tokenOpen
		return tok, nil
	case c == ')':
		l.off++
		tok.text, tok.kind = ")", tokenClose
		return tok, nil
	case c == ',':
		l.off++
		tok.text, tok.kind = ",", tokenSep
		return tok, nil
	}
	for _, op := range wideOps {
		if strings.HasPrefix(l.src[l.off:], op) {
			l.off += len(op)
			tok.text, tok.kind = op, tokenOp
			return tok, nil
		}
	}
	if strings.IndexByte(singleOps, c) >= 0 {
		l.off++
		tok.text, tok.kind = string(c), tokenOp
		return tok, nil
	}
	// Unreachable after IsSafe, but the lexer does not assume it ran.
	return tok, &SyntaxError{Col: tok.pos, Token: string(c), Msg: "invalid character"}
}

// scanNum scans a numeric literal: digits and at most one dot, with an
// optional e/E exponent part. The exponent marker is consumed only when
// it is actually followed by an exponent, so "2e" lexes as "2" and a
// trailing identifier.
func (l *lexer) scanNum() (token, error) {
	tok := token{pos: l.off + 1, kind: tokenNum}
	start := l.off
	dot := false
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == '.' {
			if dot {
				break
			}
			dot = true
			l.off++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		l.off++
	}
	// Optional exponent: e or E, optional sign, at least one digit.
	if l.off < len(l.src) && (l.src[l.off] == 'e' || l.src[l.off] == 'E') {
		k := l.off + 1
		if k < len(l.src) && (l.src[k] == '+' || l.src[k] == '-') {
			k++
		}
		if k < len(l.src) && '0' <= l.src[k] && l.src[k] <= '9' {
			for k < len(l.src) && '0' <= l.src[k] && l.src[k] <= '9' {
				k++
			}
			l.off = k
		}
	}
	tok.text = l.src[start:l.off]
	if _, err := strconv.ParseFloat(tok.text, 64); err != nil {
		return tok, &SyntaxError{Col: tok.pos, Token: tok.text, Msg: "invalid number"}
	}
	return tok, nil
}

func (l *lexer) scanIdent() (token, error) {
	tok := token{pos: l.off + 1, kind: tokenIdent}
	start := l.off
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
			l.off++
			continue
		}
		break
	}
	tok.text = l.src[start:l.off]
	return tok, nil
}
