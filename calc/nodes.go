package calc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	val  float64 // nodeNum
	name string  // nodeName, nodeCall
	args []*node // nodeCall

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // literal value
	nodeName // scope lookup
	nodeCall // function call, name and args set

	nodeNeg // negate left
	nodeNop // evaluate left

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodeQuo // left // right, floor division
	nodeMod // left % right
	nodePow // left ** right

	nodeEq // left == right
	nodeNe // left != right
	nodeLt // left < right
	nodeLe // left <= right
	nodeGt // left > right
	nodeGe // left >= right
)

// opText maps binary node kinds to their canonical operator text, used
// for formatting and for operator names in domain errors.
var opText = map[nodeKind]string{
	nodeAdd: "+",
	nodeSub: "-",
	nodeMul: "*",
	nodeDiv: "/",
	nodeQuo: "//",
	nodeMod: "%",
	nodePow: "**",
	nodeEq:  "==",
	nodeNe:  "!=",
	nodeLt:  "<",
	nodeLe:  "<=",
	nodeGt:  ">",
	nodeGe:  ">=",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeNop:
		n.left.fmt(b)
	default:
		op, ok := opText[n.kind]
		if !ok {
			panic("calc: invalid node kind " + strconv.Itoa(int(n.kind)))
		}
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(op)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	}
}
