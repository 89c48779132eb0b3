// Package device provides the Device Manager for the AR/VR simulation host.
//
// The Device Manager is the catalogue of connected headsets, displays and
// other AR/VR devices, keyed by device ID. Each Device carries one
// Capabilities value describing its display resolution and frame rate.
//
// # Key Types
//
//   - Capabilities: display Resolution plus Framerate, a plain value
//   - Device: an immutable ID + Capabilities pair
//   - Manager: the ID → Device registry
//
// # Usage
//
//	headset := device.NewDevice("device1", device.Capabilities{
//	    Resolution: device.Resolution{Width: 1024, Height: 768},
//	    Framerate:  60,
//	})
//
//	mgr := device.NewManager()
//	mgr.AddDevice(headset)
//
//	d, err := mgr.GetDevice("device1")
//	if errors.Is(err, device.ErrDeviceNotFound) {
//	    // not registered
//	}
//
// Registering a second device with an existing ID replaces the first.
//
// # Thread Safety
//
// Device is immutable and safe to share. Manager is not synchronised; the
// simulator package guards it with its own lock.
package device
