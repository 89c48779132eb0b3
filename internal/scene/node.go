package scene

import "fmt"

// Node is a named node in a scene tree.
// A node owns its children; a child has at most one owner.
type Node struct {
	id       string
	children []*Node
	parent   *Node
	attached bool
}

// NewNode creates a leaf node with no children.
func NewNode(id string) *Node {
	return &Node{id: id}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Children returns the immediate descendants in insertion order.
// The returned slice is a copy; the nodes are not.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of immediate descendants.
func (n *Node) Len() int { return len(n.children) }

// AddChild appends child to the end of n's children and transfers
// ownership of child to n.
//
// Returns:
//   - ErrNilNode if child is nil
//   - ErrNodeAttached if child is already owned by a node or a scene
//   - ErrNodeCycle if child is n or one of n's ancestors
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("adding %q under %q: %w", child.id, n.id, ErrNodeCycle)
		}
	}
	if child.attached {
		return fmt.Errorf("adding %q under %q: %w", child.id, n.id, ErrNodeAttached)
	}

	child.parent = n
	child.attached = true
	n.children = append(n.children, child)
	return nil
}

// Walk visits n and its descendants depth-first in pre-order.
// depth is 0 for n. Returning false from fn stops the walk.
// Walk reports whether the walk ran to completion.
func (n *Node) Walk(fn func(depth int, node *Node) bool) bool {
	return n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(int, *Node) bool) bool {
	if !fn(depth, n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// DeepCopy returns an independent copy of the subtree rooted at n.
// The copy is detached: it has no parent and may be attached anew.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	return n.copyUnder(nil)
}

func (n *Node) copyUnder(parent *Node) *Node {
	cpy := &Node{
		id:       n.id,
		parent:   parent,
		attached: parent != nil,
	}
	if n.children != nil {
		cpy.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			cpy.children[i] = c.copyUnder(cpy)
		}
	}
	return cpy
}
