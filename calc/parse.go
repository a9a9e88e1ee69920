package calc

import (
	"slices"
	"strconv"
)

// Grammar, lowest precedence first:
//
//	Cmp   = Sum { ('==' | '!=' | '<' | '<=' | '>' | '>=') Sum }
//	Sum   = Term { ('+' | '-') Term }
//	Term  = Unary { ('*' | '/' | '//' | '%') Unary }
//	Unary = ('+' | '-') Unary | Pow
//	Pow   = Atom [ ('**' | '^') Unary ]
//	Atom  = num | name | name '(' [ Cmp { ',' Cmp } ] ')' | '(' Cmp ')'
//
// "^" is accepted as an alias for "**". Comparisons evaluate to 1 or 0.

// MaxDepth is the maximum expression nesting depth the parser accepts.
// Deeper input fails with a DepthError instead of exhausting the stack.
const MaxDepth = 256

// Expr is a parsed expression that can be evaluated with a variable
// table. A parsed Expr is immutable and safe for concurrent use.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of identifiers the expression looks up
	// as values.
	names []string
}

// operator describes a binary operator's parsing behavior.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// kind is the node kind to use when this operator is selected.
	kind nodeKind
}

// unaryPrec binds tighter than multiplication but looser than
// exponentiation, so -x**y parses as -(x**y) while -x*y is (-x)*y.
const unaryPrec int8 = 4

// binop gets a binary operator for a token string. If the token is no
// binary operator, the result has kind nodeNone. "&", "|", "~", "!",
// and a lone "=" pass the validator but have no meaning here.
func binop(text string) operator {
	switch text {
	case "==":
		return operator{1, false, nodeEq}
	case "!=":
		return operator{1, false, nodeNe}
	case "<":
		return operator{1, false, nodeLt}
	case "<=":
		return operator{1, false, nodeLe}
	case ">":
		return operator{1, false, nodeGt}
	case ">=":
		return operator{1, false, nodeGe}
	case "+":
		return operator{2, false, nodeAdd}
	case "-":
		return operator{2, false, nodeSub}
	case "*":
		return operator{3, false, nodeMul}
	case "/":
		return operator{3, false, nodeDiv}
	case "//":
		return operator{3, false, nodeQuo}
	case "%":
		return operator{3, false, nodeMod}
	case "**", "^":
		return operator{5, true, nodePow}
	default:
		return operator{}
	}
}

type parser struct {
	lex   *lexer
	names map[string]bool
}

// Parse sanitizes, validates, and parses an expression. The resulting
// Expr can be evaluated any number of times with different variable
// tables.
func Parse(expr string) (*Expr, error) {
	s := Sanitize(expr)
	if !IsSafe(s) {
		return nil, &ValidationError{Expr: s}
	}
	p := parser{
		lex:   &lexer{src: s},
		names: make(map[string]bool),
	}
	n, err := p.parseExpr(0, 0)
	if err != nil {
		return nil, err
	}
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Close: ")"}
	case tokenSep:
		return nil, &SyntaxError{Col: tok.pos, Token: ",", Msg: "separator outside function call"}
	default:
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text}
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	slices.Sort(ex.names)
	return &ex, nil
}

// parseExpr parses a subexpression whose binary operators all have
// precedence of at least min.
func (p *parser) parseExpr(min int8, depth int) (*node, error) {
	if depth >= MaxDepth {
		return nil, &DepthError{Col: p.lex.off + 1, Limit: MaxDepth}
	}
	lhs, err := p.parseUnary(depth)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp {
			p.lex.push(tok)
			return lhs, nil
		}
		op := binop(tok.text)
		if op.kind == nodeNone {
			return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Msg: "unsupported operator"}
		}
		if op.prec < min {
			p.lex.push(tok)
			return lhs, nil
		}
		next := op.prec + 1
		if op.right {
			next = op.prec
		}
		rhs, err := p.parseExpr(next, depth+1)
		if err != nil {
			return nil, err
		}
		lhs = &node{kind: op.kind, left: lhs, right: rhs}
	}
}

// parseUnary parses the first component of a term: a literal, a name or
// call, a parenthesized group, or a unary sign applied to one of those.
func (p *parser) parseUnary(depth int) (*node, error) {
	if depth >= MaxDepth {
		return nil, &DepthError{Col: p.lex.off + 1, Limit: MaxDepth}
	}
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// The lexer already validated the literal.
			panic("calc: invalid number token " + tok.String())
		}
		return &node{kind: nodeNum, val: v}, nil
	case tokenIdent:
		nxt, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if nxt.kind == tokenOpen {
			args, err := p.parseArgs(depth + 1)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeCall, name: tok.text, args: args}, nil
		}
		p.lex.push(nxt)
		p.names[tok.text] = true
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenOp:
		switch tok.text {
		case "-":
			rhs, err := p.parseExpr(unaryPrec, depth+1)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeNeg, left: rhs}, nil
		case "+":
			rhs, err := p.parseExpr(unaryPrec, depth+1)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeNop, left: rhs}, nil
		default:
			return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Msg: "unexpected operator"}
		}
	case tokenOpen:
		rhs, err := p.parseExpr(0, depth+1)
		if err != nil {
			return nil, err
		}
		end, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenClose {
			return nil, &BracketError{Col: end.pos, Open: "("}
		}
		return rhs, nil
	case tokenClose, tokenSep:
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Msg: "expected expression before"}
	case tokenEOF:
		return nil, &SyntaxError{Col: tok.pos}
	default:
		panic("calc: unknown token " + tok.String())
	}
}

// parseArgs parses a parenthesized argument list. The open parenthesis
// has already been consumed; parseArgs consumes through the matching
// close parenthesis.
func (p *parser) parseArgs(depth int) ([]*node, error) {
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenClose {
		return nil, nil
	}
	p.lex.push(tok)
	var args []*node
	for {
		a, err := p.parseExpr(0, depth)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		end, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenClose:
			return args, nil
		case tokenSep:
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Open: "("}
		default:
			return nil, &SyntaxError{Col: end.pos, Token: end.text}
		}
	}
}

// Vars returns the identifiers the expression resolves as values, in
// sorted order. Function call names are not included.
func (e *Expr) Vars() []string {
	return slices.Clone(e.names)
}

// String renders the parsed expression with explicit grouping.
func (e *Expr) String() string {
	return e.n.String()
}
