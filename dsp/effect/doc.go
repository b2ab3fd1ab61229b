// Package effect defines the node contract of the audio graph and the
// built-in nodes: [Zero], [SineWave], [Gain], [Add] and [Output].
//
// Rendering is pull based. A node's Apply fills an interleaved buffer for
// an absolute frame position and, when it has inputs, first asks those
// inputs to render into the same buffer (or a scratch buffer). Nothing is
// cached between calls, so a node shared by several downstream nodes is
// rendered once per consumer.
//
// Input slots and parameters may be changed from a control goroutine while
// the audio callback renders. Each value sits in its own mutex-guarded cell
// that is held only for a single read or swap, never across a recursive
// Apply.
package effect
