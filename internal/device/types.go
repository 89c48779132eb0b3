package device

import "fmt"

// Resolution is a display resolution in pixels.
type Resolution struct {
	Width  uint32 `yaml:"width" json:"width"`
	Height uint32 `yaml:"height" json:"height"`
}

// Capabilities describes what a device can display.
// It is a plain comparable value with no behaviour beyond formatting.
type Capabilities struct {
	Resolution Resolution `yaml:"resolution" json:"resolution"`
	Framerate  uint32     `yaml:"framerate" json:"framerate"`
}

// String formats the capabilities as "WIDTHxHEIGHT@FPS", e.g. "1024x768@60".
func (c Capabilities) String() string {
	return fmt.Sprintf("%dx%d@%d", c.Resolution.Width, c.Resolution.Height, c.Framerate)
}

// Device is a connected AR/VR device. It is immutable after construction.
type Device struct {
	id           string
	capabilities Capabilities
}

// NewDevice creates a device, storing id and capabilities verbatim.
func NewDevice(id string, capabilities Capabilities) *Device {
	return &Device{
		id:           id,
		capabilities: capabilities,
	}
}

// ID returns the device identifier.
func (d *Device) ID() string { return d.id }

// Capabilities returns the device capabilities.
func (d *Device) Capabilities() Capabilities { return d.capabilities }
