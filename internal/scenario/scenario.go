package scenario

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/arvr-host/internal/device"
	"github.com/nerrad567/arvr-host/internal/scene"
)

// maxNodeDepth bounds node nesting in a scenario file.
const maxNodeDepth = 32

//go:embed default.yaml
var defaultScenario []byte

// Scenario is the declarative form of the scenes and devices to register.
type Scenario struct {
	// CurrentScene is the scene to select after registration.
	// Empty leaves the current scene unset.
	CurrentScene string       `yaml:"current_scene"`
	Scenes       []SceneSpec  `yaml:"scenes"`
	Devices      []DeviceSpec `yaml:"devices"`
}

// SceneSpec describes one scene and its top-level nodes.
type SceneSpec struct {
	ID    string     `yaml:"id"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec describes a node and, recursively, its children.
type NodeSpec struct {
	ID       string     `yaml:"id"`
	Children []NodeSpec `yaml:"children"`
}

// DeviceSpec describes one device.
type DeviceSpec struct {
	ID           string              `yaml:"id"`
	Capabilities device.Capabilities `yaml:"capabilities"`
}

// Load reads and validates a scenario file.
//
// Parameters:
//   - path: Path to the YAML scenario file
//
// Returns:
//   - *Scenario: Parsed and validated scenario
//   - error: If the file cannot be read, parsed, or validation fails
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the built-in demonstration scenario: scene "scene1"
// holding node "node1", device "device1" at 1024x768@60, and "scene1"
// selected as current.
func Default() *Scenario {
	s, err := Parse(defaultScenario)
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded default is invalid: %v", err))
	}
	return s
}

// Validate checks the scenario for errors. All problems are reported in
// a single error wrapping ErrInvalidScenario.
func (s *Scenario) Validate() error {
	var errs []string

	errs = append(errs, s.validateScenes()...)
	errs = append(errs, s.validateDevices()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, strings.Join(errs, "; "))
	}
	return nil
}

// validateScenes validates scene and node definitions.
func (s *Scenario) validateScenes() []string {
	var errs []string
	sceneIDs := make(map[string]bool)

	for i, sc := range s.Scenes {
		if sc.ID == "" {
			errs = append(errs, fmt.Sprintf("scenes[%d].id is required", i))
		} else if sceneIDs[sc.ID] {
			errs = append(errs, fmt.Sprintf("scenes[%d].id %q is duplicate", i, sc.ID))
		}
		sceneIDs[sc.ID] = true

		for j, n := range sc.Nodes {
			errs = append(errs, validateNode(fmt.Sprintf("scenes[%d].nodes[%d]", i, j), n, 1)...)
		}
	}

	if s.CurrentScene != "" && !sceneIDs[s.CurrentScene] {
		errs = append(errs, fmt.Sprintf("current_scene %q does not name a scene in this scenario", s.CurrentScene))
	}

	return errs
}

// validateNode validates a node and its descendants.
func validateNode(path string, n NodeSpec, depth int) []string {
	if depth > maxNodeDepth {
		return []string{fmt.Sprintf("%s exceeds maximum nesting depth %d", path, maxNodeDepth)}
	}

	var errs []string
	if n.ID == "" {
		errs = append(errs, path+".id is required")
	}
	for i, c := range n.Children {
		errs = append(errs, validateNode(fmt.Sprintf("%s.children[%d]", path, i), c, depth+1)...)
	}
	return errs
}

// validateDevices validates device definitions.
func (s *Scenario) validateDevices() []string {
	var errs []string
	deviceIDs := make(map[string]bool)

	for i, d := range s.Devices {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("devices[%d].id is required", i))
		} else if deviceIDs[d.ID] {
			errs = append(errs, fmt.Sprintf("devices[%d].id %q is duplicate", i, d.ID))
		}
		deviceIDs[d.ID] = true

		caps := d.Capabilities
		if caps.Resolution.Width == 0 || caps.Resolution.Height == 0 {
			errs = append(errs, fmt.Sprintf("devices[%d].capabilities.resolution must be non-zero", i))
		}
		if caps.Framerate == 0 {
			errs = append(errs, fmt.Sprintf("devices[%d].capabilities.framerate must be non-zero", i))
		}
	}

	return errs
}

// BuildScenes constructs the scenes described by the scenario.
func (s *Scenario) BuildScenes() ([]*scene.Scene, error) {
	scenes := make([]*scene.Scene, 0, len(s.Scenes))
	for _, ss := range s.Scenes {
		sc := scene.New(ss.ID)
		for _, ns := range ss.Nodes {
			n, err := buildNode(ns)
			if err != nil {
				return nil, fmt.Errorf("building scene %q: %w", ss.ID, err)
			}
			if err := sc.AddNode(n); err != nil {
				return nil, fmt.Errorf("building scene %q: %w", ss.ID, err)
			}
		}
		scenes = append(scenes, sc)
	}
	return scenes, nil
}

func buildNode(ns NodeSpec) (*scene.Node, error) {
	n := scene.NewNode(ns.ID)
	for _, cs := range ns.Children {
		c, err := buildNode(cs)
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(c); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// BuildDevices constructs the devices described by the scenario.
func (s *Scenario) BuildDevices() []*device.Device {
	devices := make([]*device.Device, 0, len(s.Devices))
	for _, spec := range s.Devices {
		devices = append(devices, device.NewDevice(spec.ID, spec.Capabilities))
	}
	return devices
}
