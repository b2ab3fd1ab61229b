// Package graph holds the node graph rendered by the player.
//
// A [Graph] owns an ordered list of nodes addressed by [NodeID]. Node 0 is
// a silent placeholder and node 1 is the designated [effect.Output] the
// render thread pulls from. Edges are stored in the downstream node's input
// slots; [Graph.Connect] refuses any edge that would close a cycle, so the
// recursive pull in Apply always terminates.
//
// A Graph is not safe for concurrent mutation. Structure changes belong to
// the control goroutine; the render thread only calls Apply on the root.
package graph
