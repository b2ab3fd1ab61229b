// Package track provides the decoded-audio source node.
//
// A [Track] owns immutable planar sample data and one peak pyramid per
// channel, built once when the track is created. It renders the region
// requested by the graph and answers waveform queries from its pyramids.
package track
