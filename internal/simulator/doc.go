// Package simulator provides the Simulator facade of the AR/VR simulation
// host.
//
// The Simulator composes one scene.Graph and one device.Manager and is the
// only surface external callers use. Each registry sits behind its own
// read-write lock, so scene and device traffic never contend with each
// other, and operations on one registry are serialised.
//
// There is no ordering guarantee across the two locks: an AddScene and an
// AddDevice issued "together" from different goroutines are not atomic as
// a pair.
//
// # Usage
//
//	sim := simulator.New()
//	sim.SetLogger(log)
//
//	s := scene.New("scene1")
//	_ = s.AddNode(scene.NewNode("node1"))
//	sim.AddScene(s)
//
//	sim.AddDevice(device.NewDevice("device1", device.Capabilities{
//	    Resolution: device.Resolution{Width: 1024, Height: 768},
//	    Framerate:  60,
//	}))
//
//	sim.SetCurrentScene("scene1")
//	sim.StartSimulation() // prints "Simulation started!"
//
// StartSimulation is a boundary: frame ticking, device polling and
// rendering belong to the engine that consumes this package.
package simulator
