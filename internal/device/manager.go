package device

import "sort"

// Logger defines the logging interface used by the Manager.
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

// Manager is the device registry, keyed by device ID.
//
// Devices are stored by value, so the registry never shares memory with
// the *Device a caller registered or looked up.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	devices map[string]Device
	logger  Logger
}

// NewManager creates an empty device manager.
func NewManager() *Manager {
	return &Manager{
		devices: make(map[string]Device),
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the manager.
func (m *Manager) SetLogger(logger Logger) {
	m.logger = logger
}

// AddDevice registers d under its ID. A device already registered under
// the same ID is replaced; the last write wins. A nil device is ignored.
func (m *Manager) AddDevice(d *Device) {
	if d == nil {
		return
	}

	_, replaced := m.devices[d.id]
	m.devices[d.id] = *d

	m.logger.Debug("device added", "id", d.id, "capabilities", d.capabilities.String(), "replaced", replaced)
}

// GetDevice returns the device registered under id.
// Returns ErrDeviceNotFound on a miss.
func (m *Manager) GetDevice(id string) (*Device, error) {
	d, ok := m.devices[id]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	return &d, nil
}

// ListDevices returns all devices sorted by ID.
func (m *Manager) ListDevices() []*Device {
	devices := make([]*Device, 0, len(m.devices))
	for id := range m.devices {
		d := m.devices[id]
		devices = append(devices, &d)
	}
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].id < devices[j].id
	})
	return devices
}

// DeviceCount returns the number of registered devices.
func (m *Manager) DeviceCount() int {
	return len(m.devices)
}
