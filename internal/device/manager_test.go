package device

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	noopLogger
	debug []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) {
	l.debug = append(l.debug, msg)
}

func xga() Capabilities {
	return Capabilities{Resolution: Resolution{Width: 1024, Height: 768}, Framerate: 60}
}

func TestNewManager(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 0, m.DeviceCount())
	assert.Empty(t, m.ListDevices())
}

func TestManager_GetDevice(t *testing.T) {
	m := NewManager()

	_, err := m.GetDevice("device1")
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	m.AddDevice(NewDevice("device1", xga()))

	d, err := m.GetDevice("device1")
	require.NoError(t, err)
	assert.Equal(t, "device1", d.ID())
	assert.Equal(t, uint32(1024), d.Capabilities().Resolution.Width)
	assert.Equal(t, uint32(768), d.Capabilities().Resolution.Height)
	assert.Equal(t, uint32(60), d.Capabilities().Framerate)
}

func TestManager_AddDevice_Overwrites(t *testing.T) {
	logger := &recordingLogger{}
	m := NewManager()
	m.SetLogger(logger)

	m.AddDevice(NewDevice("device1", xga()))
	newer := Capabilities{Resolution: Resolution{Width: 1920, Height: 1080}, Framerate: 90}
	m.AddDevice(NewDevice("device1", newer))

	assert.Equal(t, 1, m.DeviceCount())
	d, err := m.GetDevice("device1")
	require.NoError(t, err)
	assert.Equal(t, newer, d.Capabilities())
	assert.Len(t, logger.debug, 2)
}

func TestManager_AddDevice_Nil(t *testing.T) {
	m := NewManager()
	m.AddDevice(nil)
	assert.Equal(t, 0, m.DeviceCount())
}

func TestManager_GetDevice_ReturnsCopy(t *testing.T) {
	m := NewManager()
	m.AddDevice(NewDevice("device1", xga()))

	a, err := m.GetDevice("device1")
	require.NoError(t, err)
	b, err := m.GetDevice("device1")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, *a, *b)
}

func TestManager_ListDevices_Sorted(t *testing.T) {
	m := NewManager()
	for _, id := range []string{"hmd-3", "hmd-1", "hmd-2"} {
		m.AddDevice(NewDevice(id, xga()))
	}

	var ids []string
	for _, d := range m.ListDevices() {
		ids = append(ids, d.ID())
	}
	assert.Equal(t, []string{"hmd-1", "hmd-2", "hmd-3"}, ids)
}

func BenchmarkManagerGetDevice(b *testing.B) {
	m := NewManager()
	for i := 0; i < 100; i++ {
		m.AddDevice(NewDevice(fmt.Sprintf("dev-%04d", i), xga()))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.GetDevice("dev-0050") //nolint:errcheck // benchmark
	}
}
