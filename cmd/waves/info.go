package main

import (
	"fmt"
	"strings"

	"github.com/Zahr1729/Iron/dsp/graph"
	"github.com/Zahr1729/Iron/scene"
	timestats "github.com/Zahr1729/Iron/stats/time"
)

// InfoCmd prints the graph a scene or audio file builds.
type InfoCmd struct {
	Path   string  `arg:"" type:"existingfile" help:"Scene (.json) or audio file"`
	Rate   float64 `help:"Generator sample rate (0 uses the first track's rate)" default:"0"`
	Export string  `type:"path" help:"Write the built graph to this scene file"`
}

// writeLevels prints peak, RMS, crest factor and clipping per channel.
func writeLevels(b *strings.Builder, channels int, samples func(int) []float64) {
	planar := make([][]float64, channels)
	for c := range planar {
		planar[c] = samples(c)
	}
	for c, st := range timestats.Planar(planar) {
		fmt.Fprintf(b, "       ch%d  peak %6.1f dBFS  rms %6.1f dBFS  crest %4.2f  clipped %d\n",
			c, st.PeakdB(), st.RMSdB(), st.CrestFactor(), st.Clipped)
	}
}

// Run prints nodes, edges and tracks, and optionally exports the graph.
func (c *InfoCmd) Run(g *Globals) error {
	s, err := openSession(c.Path, c.Rate, g.logger)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(c.Path))
	b.WriteString("\n")
	fmt.Fprintln(&b, keyValue("Sample rate", fmt.Sprintf("%g Hz", s.rate)))
	fmt.Fprintln(&b, keyValue("Nodes", s.graph.Len()))
	fmt.Fprintln(&b, keyValue("Edges", len(s.graph.Edges())))

	b.WriteString("\n")
	for id, e := range s.graph.Nodes() {
		state := "connected"
		if !s.graph.Connected(graph.NodeID(id)) {
			state = "unconnected"
		}
		fmt.Fprintf(&b, "  %3d  %-24s %s\n", id, e.Name(), KeyStyle.Render(state))
	}

	if len(s.tracks) > 0 {
		b.WriteString("\n")
		for _, tr := range s.tracks {
			fmt.Fprintf(&b, "  %s  %d ch, %d Hz, %s\n",
				ValueStyle.Render(tr.Name()), tr.ChannelCount(), tr.SampleRate(), tr.Duration())
			writeLevels(&b, tr.ChannelCount(), tr.Samples)
		}
	}

	fmt.Fprint(g.out, b.String())

	if c.Export == "" {
		return nil
	}

	out, err := scene.FromGraph(s.graph)
	if err != nil {
		return err
	}
	if err := out.Save(c.Export); err != nil {
		return err
	}
	g.logger.Info("scene exported", "path", c.Export, "nodes", len(out.Nodes))
	return nil
}
