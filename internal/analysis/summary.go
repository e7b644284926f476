// Package analysis derives descriptive figures from parsed traces. The
// numbers feed axis limits, legend text and the report tables; no
// pass/fail evaluation happens here.
package analysis

import (
	"fmt"
	"math"

	"github.com/user/specan_eval_go/internal/parser"
)

// TraceSummary holds the headline figures of one sweep.
type TraceSummary struct {
	Path      string
	Points    int
	FreqStart float64 // first frequency in file order
	FreqStop  float64 // last frequency in file order
	PeakLevel float64
	PeakFreq  float64 // frequency at which PeakLevel occurs
	MinLevel  float64
	MeanLevel float64
}

// Helper to calculate mean
func calculateMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Summarize computes the summary of a single measurement's primary trace.
func Summarize(m *parser.Measurement) (*TraceSummary, error) {
	if m == nil || len(m.Trace.Frequency) == 0 {
		return nil, fmt.Errorf("trace is empty, nothing to summarize")
	}

	freq := m.Trace.Frequency
	val := m.Trace.Value

	s := &TraceSummary{
		Path:      m.Path,
		Points:    len(freq),
		FreqStart: freq[0],
		FreqStop:  freq[len(freq)-1],
		PeakLevel: val[0],
		PeakFreq:  freq[0],
		MinLevel:  val[0],
		MeanLevel: calculateMean(val),
	}
	for i, v := range val {
		if v > s.PeakLevel {
			s.PeakLevel = v
			s.PeakFreq = freq[i]
		}
		if v < s.MinLevel {
			s.MinLevel = v
		}
	}
	return s, nil
}

// SummarizeAll summarizes every trace of a batch, skipping empty ones.
func SummarizeAll(traces parser.MultiTrace) []TraceSummary {
	summaries := make([]TraceSummary, 0, len(traces))
	for _, m := range traces {
		s, err := Summarize(m)
		if err != nil {
			continue
		}
		summaries = append(summaries, *s)
	}
	return summaries
}

// FreqRange returns the union of the frequency ranges of a batch, used to
// set shared x-axis limits on overlay plots.
func FreqRange(traces parser.MultiTrace) (min, max float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, m := range traces {
		for _, f := range m.Trace.Frequency {
			if f < min {
				min = f
			}
			if f > max {
				max = f
			}
		}
	}
	if min > max {
		return 0, 0, false
	}
	return min, max, true
}
