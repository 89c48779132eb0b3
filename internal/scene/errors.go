package scene

import "errors"

// Domain errors for the scene package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, scene.ErrSceneNotFound) {
//	    // handle absent scene
//	}
var (
	// ErrSceneNotFound is returned when a scene ID is not registered,
	// including when the current scene was never set.
	ErrSceneNotFound = errors.New("scene: not found")

	// ErrNilNode is returned when a nil node is added to a node or scene.
	ErrNilNode = errors.New("scene: nil node")

	// ErrNodeAttached is returned when a node that already has an owner
	// (a parent node or a scene) is added again.
	ErrNodeAttached = errors.New("scene: node already attached")

	// ErrNodeCycle is returned when adding a child would make a node its
	// own ancestor.
	ErrNodeCycle = errors.New("scene: node cycle")
)
