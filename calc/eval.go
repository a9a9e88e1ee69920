package calc

import "math"

// Evaluate sanitizes, validates, parses, and evaluates an expression
// against the merged scope formed by the builtin table overridden by
// vars. It is the composition of Parse and Expr.Eval. vars may be nil;
// it is never mutated.
func Evaluate(expr string, vars map[string]float64) (float64, error) {
	ex, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return ex.Eval(vars)
}

// Eval evaluates the expression with the given variable table. Names
// are resolved variable-first, so a caller variable shadows a builtin
// constant or function of the same name. Evaluating the same Expr with
// an unchanged table always yields the same result.
func (e *Expr) Eval(vars map[string]float64) (float64, error) {
	return e.n.eval(vars)
}

// lookup resolves a bare identifier. Comparisons and arithmetic treat
// truth as 1 and falsehood as 0.
func lookup(name string, vars map[string]float64) (float64, error) {
	if v, ok := vars[name]; ok {
		return v, nil
	}
	if v, ok := builtinConsts[name]; ok {
		return v, nil
	}
	if _, ok := builtinFuncs[name]; ok {
		return 0, &CallError{Func: name, Args: -1}
	}
	return 0, &NameError{Name: name}
}

func (n *node) eval(vars map[string]float64) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		return lookup(n.name, vars)
	case nodeCall:
		return n.call(vars)
	case nodeNeg:
		v, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeNop:
		return n.left.eval(vars)
	}
	l, err := n.left.eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &DomainError{Func: "/", Reason: "division by zero"}
		}
		return l / r, nil
	case nodeQuo:
		if r == 0 {
			return 0, &DomainError{Func: "//", Reason: "division by zero"}
		}
		return math.Floor(l / r), nil
	case nodeMod:
		if r == 0 {
			return 0, &DomainError{Func: "%", Reason: "division by zero"}
		}
		return floorMod(l, r), nil
	case nodePow:
		return power("**", l, r)
	case nodeEq:
		return b2f(l == r), nil
	case nodeNe:
		return b2f(l != r), nil
	case nodeLt:
		return b2f(l < r), nil
	case nodeLe:
		return b2f(l <= r), nil
	case nodeGt:
		return b2f(l > r), nil
	case nodeGe:
		return b2f(l >= r), nil
	}
	panic("calc: invalid AST node " + n.String())
}

// call resolves the callee against the merged scope, variable-first: a
// variable shadowing a function name makes the name uncallable for that
// evaluation, exactly as it shadows a constant.
func (n *node) call(vars map[string]float64) (float64, error) {
	if _, ok := vars[n.name]; ok {
		return 0, &CallError{Func: n.name, Value: true}
	}
	fn, ok := builtinFuncs[n.name]
	if !ok {
		if _, ok := builtinConsts[n.name]; ok {
			return 0, &CallError{Func: n.name, Value: true}
		}
		return 0, &NameError{Name: n.name}
	}
	if !fn.canCall(len(n.args)) {
		return 0, &CallError{Func: n.name, Args: len(n.args)}
	}
	argv := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(vars)
		if err != nil {
			return 0, err
		}
		argv[i] = v
	}
	return fn.call(argv)
}

// floorMod is the modulo paired with floor division: the result takes
// the sign of the divisor, so (-7) % 3 is 2 and 7 % -3 is -2.
func floorMod(l, r float64) float64 {
	m := math.Mod(l, r)
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
