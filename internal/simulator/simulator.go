package simulator

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nerrad567/arvr-host/internal/device"
	"github.com/nerrad567/arvr-host/internal/scenario"
	"github.com/nerrad567/arvr-host/internal/scene"
)

// StartedMessage is the line StartSimulation writes to the output stream.
const StartedMessage = "Simulation started!"

// Logger defines the logging interface used by the Simulator.
// The same logger is handed to the wrapped registries.
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

// Simulator is the thread-safe facade over the scene graph and the device
// manager. It is constructed explicitly; there is no package-level instance.
//
// All public methods are thread-safe, except SetLogger and SetOutput which
// must be called before the Simulator is shared.
type Simulator struct {
	sceneMu sync.RWMutex // Protects scenes
	scenes  *scene.Graph

	deviceMu sync.RWMutex // Protects devices
	devices  *device.Manager

	outMu  sync.Mutex // Serialises writes to out
	out    io.Writer
	logger Logger
}

// New creates a Simulator with an empty scene graph and device manager.
// StartSimulation writes to os.Stdout until SetOutput is called.
func New() *Simulator {
	return &Simulator{
		scenes:  scene.NewGraph(),
		devices: device.NewManager(),
		out:     os.Stdout,
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the simulator and its registries.
func (s *Simulator) SetLogger(logger Logger) {
	s.logger = logger

	s.sceneMu.Lock()
	s.scenes.SetLogger(logger)
	s.sceneMu.Unlock()

	s.deviceMu.Lock()
	s.devices.SetLogger(logger)
	s.deviceMu.Unlock()
}

// SetOutput sets the operator-facing stream StartSimulation writes to.
func (s *Simulator) SetOutput(w io.Writer) {
	s.out = w
}

// AddScene registers sc, replacing any scene with the same ID.
func (s *Simulator) AddScene(sc *scene.Scene) {
	s.sceneMu.Lock()
	defer s.sceneMu.Unlock()
	s.scenes.AddScene(sc)
}

// SetCurrentScene selects the scene with the given ID as current.
// The ID does not have to be registered.
func (s *Simulator) SetCurrentScene(id string) {
	s.sceneMu.Lock()
	defer s.sceneMu.Unlock()
	s.scenes.SetCurrentScene(id)
}

// AddDevice registers d, replacing any device with the same ID.
func (s *Simulator) AddDevice(d *device.Device) {
	s.deviceMu.Lock()
	defer s.deviceMu.Unlock()
	s.devices.AddDevice(d)
}

// GetCurrentScene returns a copy of the current scene.
// Returns scene.ErrSceneNotFound if none is set or the ID is not registered.
func (s *Simulator) GetCurrentScene() (*scene.Scene, error) {
	s.sceneMu.RLock()
	defer s.sceneMu.RUnlock()
	return s.scenes.GetCurrentScene()
}

// GetScene returns a copy of the scene registered under id.
// Returns scene.ErrSceneNotFound on a miss.
func (s *Simulator) GetScene(id string) (*scene.Scene, error) {
	s.sceneMu.RLock()
	defer s.sceneMu.RUnlock()
	return s.scenes.GetScene(id)
}

// ListScenes returns copies of all scenes sorted by ID.
func (s *Simulator) ListScenes() []*scene.Scene {
	s.sceneMu.RLock()
	defer s.sceneMu.RUnlock()
	return s.scenes.ListScenes()
}

// GetDevice returns the device registered under id.
// Returns device.ErrDeviceNotFound on a miss.
func (s *Simulator) GetDevice(id string) (*device.Device, error) {
	s.deviceMu.RLock()
	defer s.deviceMu.RUnlock()
	return s.devices.GetDevice(id)
}

// ListDevices returns all devices sorted by ID.
func (s *Simulator) ListDevices() []*device.Device {
	s.deviceMu.RLock()
	defer s.deviceMu.RUnlock()
	return s.devices.ListDevices()
}

// Stats is a point-in-time summary of the registries.
// Scene and device figures are read under separate locks.
type Stats struct {
	Scenes       int
	Devices      int
	CurrentScene string
}

// GetStats returns current registry statistics.
func (s *Simulator) GetStats() Stats {
	var stats Stats

	s.sceneMu.RLock()
	stats.Scenes = s.scenes.SceneCount()
	stats.CurrentScene = s.scenes.CurrentSceneID()
	s.sceneMu.RUnlock()

	s.deviceMu.RLock()
	stats.Devices = s.devices.DeviceCount()
	s.deviceMu.RUnlock()

	return stats
}

// Apply registers every scene and device of sc, then selects
// sc.CurrentScene when it is set. Scenes and devices are registered
// concurrently, each under its own lock.
//
// Parameters:
//   - ctx: Context for cancellation; checked between registrations
//   - sc: Scenario to register; it is validated before anything is registered
//
// Returns:
//   - error: scenario.ErrInvalidScenario if sc fails validation, or an error
//     if ctx is cancelled. Entries registered before a cancellation stay
//     registered.
func (s *Simulator) Apply(ctx context.Context, sc *scenario.Scenario) error {
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("applying scenario: %w", err)
	}

	scenes, err := sc.BuildScenes()
	if err != nil {
		return fmt.Errorf("applying scenario: %w", err)
	}
	devices := sc.BuildDevices()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for _, item := range scenes {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.AddScene(item)
		}
		return nil
	})
	g.Go(func() error {
		for _, item := range devices {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.AddDevice(item)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("applying scenario: %w", err)
	}

	if sc.CurrentScene != "" {
		s.SetCurrentScene(sc.CurrentScene)
	}

	s.logger.Info("scenario applied",
		"scenes", len(scenes),
		"devices", len(devices),
		"current_scene", sc.CurrentScene,
	)
	return nil
}

// StartSimulation announces the start of the simulation by writing
// StartedMessage as one line to the output stream. It changes no state.
func (s *Simulator) StartSimulation() {
	stats := s.GetStats()
	runID := uuid.NewString()

	s.outMu.Lock()
	_, err := fmt.Fprintln(s.out, StartedMessage)
	s.outMu.Unlock()
	if err != nil {
		s.logger.Warn("writing start message failed", "run_id", runID, "error", err)
	}

	s.logger.Info("simulation started",
		"run_id", runID,
		"current_scene", stats.CurrentScene,
		"scenes", stats.Scenes,
		"devices", stats.Devices,
	)
}
