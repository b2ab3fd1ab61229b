package tui

import (
	"fmt"
	"math"
	"strings"
)

var blocks = []rune(" ▁▂▃▄▅▆▇█")

const spectrumRangeDB = 90.0

// renderTransportView renders the whole screen
func renderTransportView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	b.WriteString(renderStatus(m))
	b.WriteString("\n")
	b.WriteString(renderProgressBar(m))
	b.WriteString("\n\n")

	if wave := renderWaveform(m); wave != "" {
		b.WriteString(wave)
		b.WriteString("\n\n")
	}

	if spec := renderSpectrum(m.spectrum, m.columns(), spectrumRows); spec != "" {
		b.WriteString(spec)
		b.WriteString("\n\n")
	}

	if m.Err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.Err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space play/stop · ←/→ seek · home rewind · q quit"))

	return b.String()
}

func renderHeader(m Model) string {
	title := m.cfg.Title
	if title == "" && m.cfg.Root != nil {
		title = m.cfg.Root.Name()
	}
	return titleStyle.Render("Waves") + " " + subtitleStyle.Render(title)
}

func renderStatus(m Model) string {
	state := stoppedStyle.Render("■ Stopped")
	if m.Playing {
		state = playingStyle.Render("▶ Playing")
	}

	clock := formatClock(m.Position, m.cfg.SampleRate)
	if m.cfg.Frames > 0 {
		clock += " / " + formatClock(m.cfg.Frames, m.cfg.SampleRate)
	}

	return fmt.Sprintf("%s  %s", state, clock)
}

func renderProgressBar(m Model) string {
	width := m.columns()
	if m.cfg.Frames <= 0 {
		return helpStyle.Render(strings.Repeat("─", width))
	}

	filled := int(float64(width) * min(float64(m.Position)/float64(m.cfg.Frames), 1))
	return playheadStyle.Render(strings.Repeat("━", filled)) +
		helpStyle.Render(strings.Repeat("─", width-filled))
}

func renderWaveform(m Model) string {
	if len(m.wave) == 0 {
		return ""
	}

	head := -1
	if m.cfg.Frames > 0 {
		head = min(m.Position*len(m.wave)/m.cfg.Frames, len(m.wave)-1)
	}

	var b strings.Builder
	for i, a := range m.wave {
		r := string(level(a, len(blocks)-1))
		if i == head {
			b.WriteString(playheadStyle.Render("│"))
			continue
		}
		b.WriteString(waveStyle.Render(r))
	}
	return b.String()
}

// renderSpectrum draws a log-frequency bar chart of a dB curve.
func renderSpectrum(curve []float64, width, rows int) string {
	cols := spectrumColumns(curve, width)
	if len(cols) == 0 {
		return ""
	}

	eighths := rows * (len(blocks) - 1)
	heights := make([]int, len(cols))
	for i, db := range cols {
		norm := (db + spectrumRangeDB) / spectrumRangeDB
		heights[i] = int(math.Round(math.Max(0, math.Min(norm, 1)) * float64(eighths)))
	}

	lines := make([]string, rows)
	for r := range rows {
		floor := (rows - 1 - r) * (len(blocks) - 1)
		var line strings.Builder
		for _, h := range heights {
			n := min(max(h-floor, 0), len(blocks)-1)
			line.WriteRune(blocks[n])
		}
		lines[r] = spectrumStyle.Render(line.String())
	}
	return strings.Join(lines, "\n")
}

// spectrumColumns reduces bins 1..len(curve)-1 to width log-spaced
// columns, keeping the loudest bin of each.
func spectrumColumns(curve []float64, width int) []float64 {
	bins := len(curve) - 1
	if bins < 1 || width <= 0 {
		return nil
	}

	out := make([]float64, width)
	for c := range out {
		lo := int(math.Pow(float64(bins), float64(c)/float64(width)))
		hi := int(math.Pow(float64(bins), float64(c+1)/float64(width)))
		lo = min(max(lo, 1), bins)
		hi = min(max(hi, lo+1), bins+1)

		out[c] = math.Inf(-1)
		for k := lo; k < hi; k++ {
			out[c] = math.Max(out[c], curve[k])
		}
	}
	return out
}

func level(a float64, top int) rune {
	n := int(math.Round(math.Min(math.Abs(a), 1) * float64(top)))
	return blocks[n]
}

func formatClock(frames int, sampleRate float64) string {
	if sampleRate <= 0 {
		return "--:--.---"
	}
	ms := int64(float64(frames) / sampleRate * 1000)
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}
