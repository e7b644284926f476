// Package report renders parsed traces to PNG plots and assembles the PDF
// measurement report.
package report

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/user/specan_eval_go/internal/analysis"
	"github.com/user/specan_eval_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotOptions controls titles, labels and sizing of a rendered plot. Empty
// label fields fall back to the units recorded in the trace settings.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Legend []string // one entry per trace for overlay plots

	// ShowSecondary adds the secondary (minimum) trace of an autopeak
	// measurement to a single-trace plot.
	ShowSecondary bool

	Width  vg.Length
	Height vg.Length
}

func (o *PlotOptions) defaults(m *parser.Measurement) {
	if o.Width <= 0 {
		o.Width = vg.Points(640)
	}
	if o.Height <= 0 {
		o.Height = vg.Points(400)
	}
	if m == nil {
		return
	}
	if o.XLabel == "" {
		o.XLabel = axisLabel("Frequency", m.TraceSet.XUnit)
	}
	if o.YLabel == "" {
		o.YLabel = axisLabel("Level", m.TraceSet.YUnit)
	}
	if o.Title == "" {
		o.Title = m.Path
	}
}

func axisLabel(quantity, unit string) string {
	if unit == "" {
		return quantity
	}
	return fmt.Sprintf("%s in %s", quantity, unit)
}

var tracePalette = []color.Color{
	color.RGBA{R: 0, G: 84, B: 159, A: 255},   // blue
	color.RGBA{R: 204, G: 7, B: 30, A: 255},   // red
	color.RGBA{R: 87, G: 171, B: 39, A: 255},  // green
	color.RGBA{R: 246, G: 168, B: 0, A: 255},  // orange
	color.RGBA{R: 122, G: 111, B: 172, A: 255}, // purple
	color.RGBA{R: 0, G: 152, B: 161, A: 255},  // teal
}

// newLogFreqPlot builds the shared plot skeleton: log-scaled frequency
// axis, grid on both axes, labels.
func newLogFreqPlot(opts PlotOptions) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	return p
}

func tracePoints(freq, val []float64) plotter.XYs {
	pts := make(plotter.XYs, len(freq))
	for i := range freq {
		pts[i].X = freq[i]
		pts[i].Y = val[i]
	}
	return pts
}

func renderPNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// CreateTracePlot renders one measurement on a log-frequency axis and
// returns the PNG bytes.
func CreateTracePlot(m *parser.Measurement, opts PlotOptions) ([]byte, error) {
	if m == nil || len(m.Trace.Frequency) == 0 {
		return nil, fmt.Errorf("no trace data to plot")
	}
	opts.defaults(m)

	p := newLogFreqPlot(opts)
	p.X.Min = m.Trace.Frequency[0]
	p.X.Max = m.Trace.Frequency[len(m.Trace.Frequency)-1]

	line, err := plotter.NewLine(tracePoints(m.Trace.Frequency, m.Trace.Value))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace line: %w", err)
	}
	line.Color = tracePalette[0]
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)

	if opts.ShowSecondary && len(m.Trace.SecondaryValue) == len(m.Trace.Frequency) {
		minLine, err := plotter.NewLine(tracePoints(m.Trace.Frequency, m.Trace.SecondaryValue))
		if err != nil {
			return nil, fmt.Errorf("failed to create secondary trace line: %w", err)
		}
		minLine.Color = tracePalette[1]
		minLine.LineStyle.Width = vg.Points(1)
		minLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(minLine)
		p.Legend.Add("peak", line)
		p.Legend.Add("min", minLine)
		p.Legend.Top = true
	}

	return renderPNG(p, opts.Width, opts.Height)
}

// CreateOverlayPlot renders the primary traces of a batch in one figure,
// typically a set of load measurements over a noise-floor reference. Legend
// entries come from opts.Legend, falling back to file paths.
func CreateOverlayPlot(traces parser.MultiTrace, opts PlotOptions) ([]byte, error) {
	if len(traces) == 0 {
		return nil, fmt.Errorf("no traces to plot")
	}
	opts.defaults(traces[0])

	p := newLogFreqPlot(opts)
	if min, max, ok := analysis.FreqRange(traces); ok {
		p.X.Min = min
		p.X.Max = max
	}

	for i, m := range traces {
		line, err := plotter.NewLine(tracePoints(m.Trace.Frequency, m.Trace.Value))
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", m.Path, err)
		}
		line.Color = tracePalette[i%len(tracePalette)]
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)

		label := m.Path
		if i < len(opts.Legend) && opts.Legend[i] != "" {
			label = opts.Legend[i]
		}
		p.Legend.Add(label, line)
	}
	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)

	return renderPNG(p, opts.Width, opts.Height)
}
