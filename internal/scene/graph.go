package scene

import "sort"

// Logger defines the logging interface used by the Graph.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Graph is the scene registry: scenes keyed by ID plus the ID of the
// current scene. The current ID may not resolve to a registered scene.
//
// Scenes are stored and returned as deep copies.
//
// A Graph is not safe for concurrent use. The simulator guards it with
// its own lock; standalone users must do the same.
type Graph struct {
	scenes  map[string]*Scene
	current string
	logger  Logger
}

// NewGraph creates an empty scene graph with no current scene.
func NewGraph() *Graph {
	return &Graph{
		scenes: make(map[string]*Scene),
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the graph.
func (g *Graph) SetLogger(logger Logger) {
	g.logger = logger
}

// AddScene registers s under its ID. A scene already registered under
// the same ID is replaced; the last write wins. A nil scene is ignored.
func (g *Graph) AddScene(s *Scene) {
	if s == nil {
		return
	}
	cpy := s.DeepCopy()

	_, replaced := g.scenes[cpy.id]
	g.scenes[cpy.id] = cpy

	g.logger.Debug("scene added", "id", cpy.id, "nodes", len(cpy.nodes), "replaced", replaced)
}

// SetCurrentScene stores id as the current scene.
// The ID is not checked against the registered scenes.
func (g *Graph) SetCurrentScene(id string) {
	g.current = id

	g.logger.Debug("current scene set", "id", id)
}

// CurrentSceneID returns the stored current scene ID, which may be empty
// or refer to no registered scene.
func (g *Graph) CurrentSceneID() string {
	return g.current
}

// GetCurrentScene returns the scene the current ID refers to.
// Returns ErrSceneNotFound if the current ID is not registered. An unset
// current ID is the empty ID, so it resolves to a scene registered under "".
// The returned scene is a deep copy.
func (g *Graph) GetCurrentScene() (*Scene, error) {
	return g.lookup(g.current)
}

// GetScene returns the scene registered under id.
// Returns ErrSceneNotFound on a miss. The returned scene is a deep copy.
func (g *Graph) GetScene(id string) (*Scene, error) {
	return g.lookup(id)
}

func (g *Graph) lookup(id string) (*Scene, error) {
	s, ok := g.scenes[id]
	if !ok {
		return nil, ErrSceneNotFound
	}
	return s.DeepCopy(), nil
}

// ListScenes returns deep copies of all scenes sorted by ID.
func (g *Graph) ListScenes() []*Scene {
	scenes := make([]*Scene, 0, len(g.scenes))
	for _, s := range g.scenes {
		scenes = append(scenes, s.DeepCopy())
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].id < scenes[j].id
	})
	return scenes
}

// SceneCount returns the number of registered scenes.
func (g *Graph) SceneCount() int {
	return len(g.scenes)
}
