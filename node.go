package huffman

import (
	"fmt"
	"strings"
)

// Node is an element of the build forest: either a leaf holding one symbol
// and its occurrence count, or an internal node whose weight is the sum of its
// two children. Nodes are never mutated after construction.
type Node struct {
	symbol rune
	weight int
	left   *Node
	right  *Node
}

func newLeaf(sym rune, weight int) *Node {
	return &Node{symbol: sym, weight: weight}
}

// merge builds the internal node for a merge step; a is placed on the left.
func merge(a, b *Node) *Node {
	return &Node{weight: a.weight + b.weight, left: a, right: b}
}

// IsLeaf reports whether n holds a symbol rather than two children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Symbol returns the leaf symbol. It is zero for internal nodes.
func (n *Node) Symbol() rune { return n.symbol }

// Weight returns the occurrence count of a leaf, or the summed count of all
// leaves below an internal node.
func (n *Node) Weight() int { return n.weight }

// Left returns the left ('0') child, or nil for a leaf.
func (n *Node) Left() *Node { return n.left }

// Right returns the right ('1') child, or nil for a leaf.
func (n *Node) Right() *Node { return n.right }

// Leaves returns the leaves below n from left to right.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	var walk func(*Node)
	walk = func(x *Node) {
		if x.IsLeaf() {
			out = append(out, x)
			return
		}
		walk(x.left)
		walk(x.right)
	}
	walk(n)
	return out
}

// Depth returns the number of edges on the longest root-to-leaf path. It is
// zero for a leaf or a nil tree.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.left.Depth(), n.right.Depth())
}

// label formats a node for String: leaves as 'sym':weight, internal nodes
// as their weight alone.
func (n *Node) label() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%q:%d", n.symbol, n.weight)
	}
	return fmt.Sprintf("(%d)", n.weight)
}

// String draws the subtree rooted at n, left child first:
//
//	(6)─┬─'a':3
//	    └─(3)─┬─'c':1
//	          └─'b':2
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return n.label()
	}
	head := n.label()
	pad := strings.Repeat(" ", len([]rune(head)))
	left := strings.Split(n.left.String(), "\n")
	right := strings.Split(n.right.String(), "\n")

	var sb strings.Builder
	sb.WriteString(head)
	sb.WriteString("─┬─")
	sb.WriteString(strings.Join(left, "\n"+pad+" │ "))
	sb.WriteString("\n" + pad + " └─")
	sb.WriteString(strings.Join(right, "\n"+pad+"   "))
	return sb.String()
}
