// Package scene provides the Scene Graph for the AR/VR simulation host.
//
// A Scene is a named, flat list of top-level nodes. Each Node may own an
// ordered list of child nodes, so every top-level node is the root of a
// small tree. The Graph is the registry of scenes plus a pointer to the
// "current" scene.
//
// # Ownership
//
// Adding a node to a parent (AddChild) or to a scene (AddNode) moves it:
// the node is marked as attached and cannot be attached anywhere else.
// A node can never become its own ancestor, so trees are always acyclic.
//
// The Graph stores a deep copy of every scene it receives and returns deep
// copies from lookups. Holding on to a *Scene after handing it to the Graph
// therefore never aliases registry state.
//
// # Usage
//
//	root := scene.NewNode("node1")
//	_ = root.AddChild(scene.NewNode("node1a"))
//
//	s := scene.New("scene1")
//	if err := s.AddNode(root); err != nil {
//	    return err
//	}
//
//	graph := scene.NewGraph()
//	graph.AddScene(s)
//	graph.SetCurrentScene("scene1")
//
//	current, err := graph.GetCurrentScene()
//	if errors.Is(err, scene.ErrSceneNotFound) {
//	    // nothing selected, or selected id is not registered
//	}
//
// # Thread Safety
//
// Node and Scene are not safe for concurrent mutation; build them in one
// goroutine and hand them over. The Graph is not synchronised either: the
// simulator package wraps it in a lock for concurrent callers.
package scene
