package scene

import "fmt"

// Scene is a named container of top-level nodes.
// The node list is flat: nodes added with AddNode are siblings.
// Nesting is expressed through Node.AddChild.
type Scene struct {
	id    string
	nodes []*Node
}

// New creates an empty scene.
func New(id string) *Scene {
	return &Scene{id: id}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return s.id }

// Nodes returns the top-level nodes in insertion order.
// The returned slice is a copy; the nodes are not.
func (s *Scene) Nodes() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// AddNode appends node to the scene and transfers ownership of it.
// Returns ErrNilNode or ErrNodeAttached.
func (s *Scene) AddNode(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if node.attached {
		return fmt.Errorf("adding %q to scene %q: %w", node.id, s.id, ErrNodeAttached)
	}

	node.attached = true
	s.nodes = append(s.nodes, node)
	return nil
}

// NodeCount returns the number of nodes in the scene, descendants included.
func (s *Scene) NodeCount() int {
	count := 0
	for _, n := range s.nodes {
		n.Walk(func(int, *Node) bool {
			count++
			return true
		})
	}
	return count
}

// DeepCopy creates a complete independent copy of the Scene.
// Every node is cloned so modifications to the copy do not affect
// the original.
func (s *Scene) DeepCopy() *Scene {
	if s == nil {
		return nil
	}

	cpy := &Scene{id: s.id}
	if s.nodes != nil {
		cpy.nodes = make([]*Node, len(s.nodes))
		for i, n := range s.nodes {
			c := n.DeepCopy()
			c.attached = true
			cpy.nodes[i] = c
		}
	}
	return cpy
}
