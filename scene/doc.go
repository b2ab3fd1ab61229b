// Package scene reads and writes JSON scene files and builds node graphs
// from them.
//
// A scene is a flat list of nodes. Nodes refer to their inputs by index
// into that list, and the start index names the node that feeds the
// graph's output:
//
//	{
//	  "start": 1,
//	  "nodes": [
//	    {"type": "track", "path": "drums.mp3"},
//	    {"type": "gain", "db": -6, "input": 0}
//	  ]
//	}
//
// [Scene.Build] expands the scene depth first from the start index. A node
// referenced from several places becomes a single shared graph node.
package scene
