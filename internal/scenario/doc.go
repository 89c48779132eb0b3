// Package scenario loads declarative scenes and devices from YAML.
//
// A scenario file lists the scenes (with their node trees) and devices the
// host registers at startup, plus the scene to select as current:
//
//	current_scene: scene1
//	scenes:
//	  - id: scene1
//	    nodes:
//	      - id: node1
//	        children:
//	          - id: node1a
//	devices:
//	  - id: device1
//	    capabilities:
//	      resolution: {width: 1024, height: 768}
//	      framerate: 60
//
// Default returns the built-in demonstration scenario embedded in the
// binary. A file is validated as a whole: duplicate IDs inside one file are
// rejected even though the registries themselves accept overwrites.
package scenario
