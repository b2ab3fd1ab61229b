package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/Zahr1729/Iron/dsp/spectrum"
	"github.com/Zahr1729/Iron/dsp/window"
	freqstats "github.com/Zahr1729/Iron/stats/frequency"
)

// SpectrumCmd prints the loudest peaks of one analysis frame.
type SpectrumCmd struct {
	Path     string        `arg:"" type:"existingfile" help:"Scene (.json) or audio file"`
	At       time.Duration `help:"Position the frame is centered on" default:"0s"`
	Size     int           `help:"Frame size, a power of two" default:"4096"`
	Top      int           `help:"Number of peaks to print" default:"8"`
	Rate     float64       `help:"Sample rate (0 uses the first track's rate)" default:"0"`
	Channels int           `help:"Channels rendered before the mono mix" default:"2"`
	Window   string        `help:"Analysis window (rectangular, hann, hamming, blackman, blackman-harris, flattop)" default:"hann"`
}

// Run renders one windowed frame, lists its peaks and prints the shape
// of the spectrum.
func (c *SpectrumCmd) Run(g *Globals) error {
	win, err := window.Parse(c.Window)
	if err != nil {
		return err
	}

	s, err := openSession(c.Path, c.Rate, g.logger)
	if err != nil {
		return err
	}

	an, err := spectrum.NewAnalyzer(c.Size, spectrum.WithWindow(win), spectrum.WithChannels(c.Channels))
	if err != nil {
		return err
	}

	center := int(c.At.Seconds() * s.rate)
	mag, err := an.Frame(s.graph.Root(), center)
	if err != nil {
		return err
	}
	curve := spectrum.CurveDB(mag)

	fmt.Fprintln(g.out, TitleStyle.Render(fmt.Sprintf("%s @ %s", c.Path, c.At)))
	for _, k := range peakBins(curve, c.Top) {
		fmt.Fprintf(g.out, "  %10.1f Hz  %7.1f dB\n", an.BinFrequency(k, s.rate), curve[k])
	}

	st := freqstats.Calculate(mag[:an.Size()/2+1], s.rate)
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, keyValue("Centroid", fmt.Sprintf("%.1f Hz", st.Centroid)))
	fmt.Fprintln(g.out, keyValue("Spread", fmt.Sprintf("%.1f Hz", st.Spread)))
	fmt.Fprintln(g.out, keyValue("Flatness", fmt.Sprintf("%.3f", st.Flatness)))
	fmt.Fprintln(g.out, keyValue("Rolloff", fmt.Sprintf("%.1f Hz", st.Rolloff)))
	return nil
}

// peakBins returns up to n local maxima of curve above the floor, loudest
// first. DC and Nyquist are skipped.
func peakBins(curve []float64, n int) []int {
	var bins []int
	for k := 1; k < len(curve)-1; k++ {
		if curve[k] > spectrum.FloorDB && curve[k] >= curve[k-1] && curve[k] > curve[k+1] {
			bins = append(bins, k)
		}
	}

	slices.SortStableFunc(bins, func(a, b int) int {
		switch {
		case curve[a] > curve[b]:
			return -1
		case curve[a] < curve[b]:
			return 1
		}
		return 0
	})

	return bins[:min(max(n, 0), len(bins))]
}
