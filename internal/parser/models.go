package parser

import (
	"fmt"
	"log/slog"
	"strings"
)

// Family selects which analyzer's fixed header layout a file is parsed
// against. The two supported models emit a different number and ordering
// of header lines, so the family can never be inferred from the file itself.
type Family int

const (
	FamilyZVL Family = iota // R&S ZVL in spectrum analyzer mode
	FamilyZNL               // R&S ZNL in spectrum analyzer mode
)

func (f Family) String() string {
	switch f {
	case FamilyZVL:
		return "ZVL"
	case FamilyZNL:
		return "ZNL"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily maps a configuration string ("zvl", "ZNL", ...) to a Family.
func ParseFamily(s string) (Family, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ZVL":
		return FamilyZVL, nil
	case "ZNL":
		return FamilyZNL, nil
	}
	return 0, fmt.Errorf("unknown instrument family %q (want ZVL or ZNL)", s)
}

// Options configures a single parse call. The original tooling kept a pair
// of mutable module-level display flags; making this an explicit per-call
// value keeps batch parsing free of shared state.
type Options struct {
	// Autopeak indicates the acquisition recorded both a peak and a
	// minimum value per frequency bin, adding a third data column.
	Autopeak bool

	// Logger, when non-nil, receives a one-line summary of the parsed
	// settings per file.
	Logger *slog.Logger
}

// DeviceSettings holds the instrument settings extracted from the device
// region of the header. Field descriptions follow the ASCII file export
// format sections of the ZVL-K1 and ZNL manuals. Fields not emitted by a
// family stay at their zero value: the ZVL reports axis scaling, reference
// position, level range, trace mode and detector here, the ZNL reports
// those per trace and adds preamp/transducer state and electrical
// attenuation at device level.
type DeviceSettings struct {
	Model   string // instrument model
	Version string // firmware version
	Date    string // date of data set storage
	Mode    string // instrument mode

	Preamp     string // ZNL only: preamplifier status
	Transducer string // ZNL only: transducer status

	CenterFreq     float64 // center frequency
	CenterUnit     string
	FreqOffset     float64 // frequency offset
	FreqOffsetUnit string
	Span           float64 // frequency range
	SpanUnit       string

	XAxisScale string // ZVL only: x-axis scaling, LIN or LOG

	StartFreq     float64 // start frequency of the display range
	StartFreqUnit string
	StopFreq      float64 // stop frequency of the display range
	StopFreqUnit  string

	RefLevel        float64 // reference level
	RefLevelUnit    string
	LevelOffset     float64 // level offset
	LevelOffsetUnit string
	RefPosition     float64 // ZVL only: reference level position
	RefPositionUnit string

	YAxisScale string // ZVL only: y-axis scaling, LIN or LOG

	LevelRange     float64 // ZVL only: display range in y direction
	LevelRangeUnit string

	RFAttenuation     float64 // input attenuation
	RFAttenuationUnit string
	ElAttenuation     float64 // ZNL only: electrical attenuation
	ElAttenuationUnit string

	RBW           float64 // resolution bandwidth
	RBWUnit       string
	VBW           float64 // video bandwidth
	VBWUnit       string
	SweepTime     float64
	SweepTimeUnit string

	TraceMode string // ZVL only: display mode of the trace
	Detector  string // ZVL only: detector setting

	SweepCount int // number of sweeps set
}

// TraceSettings holds the trace-region header fields. As with
// DeviceSettings, the two families split the settings differently; fields a
// family does not emit stay zero.
type TraceSettings struct {
	Window string // ZNL only: selected window

	RefPosition     float64 // ZNL only
	RefPositionUnit string
	LevelRange      float64 // ZNL only
	LevelRangeUnit  string

	XAxisScale string // ZNL only
	YAxisScale string // ZNL only

	XUnit string // unit of the x values
	YUnit string // unit of the y values

	Preamp     string // ZVL only
	Transducer string // ZVL only

	Trace     string // ZNL only: selected trace
	TraceMode string // ZNL only
	Detector  string // ZNL only

	Points int // number of measurement points
}

// Trace is the decoded sweep payload. The three slices are index-aligned in
// file order; SecondaryValue is empty unless the file was parsed with
// Options.Autopeak set.
type Trace struct {
	Frequency      []float64
	Value          []float64
	SecondaryValue []float64
}

// Measurement is the full result of parsing one export file.
type Measurement struct {
	Path   string
	Family Family

	Device   DeviceSettings
	TraceSet TraceSettings
	Trace    Trace
}

// MultiTrace collects the successfully parsed files of one batch call.
type MultiTrace []*Measurement
