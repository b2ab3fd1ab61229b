package mipmap

// PlotData is a short-lived request/response value for waveform queries.
// Step must be a power of two. Data[0] and Data[1] have equal length; the
// second array is only written for min/max responses.
type PlotData struct {
	MinMax bool
	Start  int
	Step   int
	Data   [2][]float64
}

// NewPlotData returns a zeroed request for width points.
func NewPlotData(step, start, width int) *PlotData {
	if width < 0 {
		width = 0
	}
	return &PlotData{
		Start: start,
		Step:  step,
		Data:  [2][]float64{make([]float64, width), make([]float64, width)},
	}
}

// Width returns the number of requested points.
func (pd *PlotData) Width() int {
	return len(pd.Data[0])
}

// Zero clears both output arrays.
func (pd *PlotData) Zero() {
	for i := range pd.Data[0] {
		pd.Data[0][i] = 0
	}
	for i := range pd.Data[1] {
		pd.Data[1][i] = 0
	}
}
