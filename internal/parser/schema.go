package parser

// The header region of an export file is a fixed-offset layout: which
// setting sits on which line, and in which token slot, is dictated by the
// instrument family and must match the ASCII export format chapter of the
// corresponding manual exactly. Each family's layout is described here as a
// static table of (field name, row, token index, type) entries so a layout
// mismatch is caught eagerly instead of surfacing as a silently wrong value.
//
// Rows index the non-blank header lines in file order. The ZVL export
// carries a blank separator line between its device and trace regions; the
// classifier drops blank lines, so the ZVL trace fields sit at rows 22-26
// even though they occupy lines 24-28 of the raw file.

type fieldType int

const (
	fieldString fieldType = iota
	fieldFloat
	fieldInt
)

// fieldSpec places one named settings field in the header grid. Exactly one
// of str/num/n is set, matching typ; unit is set for value+unit pairs and
// addresses the token at col+1.
type fieldSpec struct {
	name string
	row  int
	col  int
	typ  fieldType

	str  func(*Measurement) *string
	num  func(*Measurement) *float64
	n    func(*Measurement) *int
	unit func(*Measurement) *string
}

// familySchema is the complete layout contract for one instrument family.
type familySchema struct {
	family Family

	// rowLabels holds the token-0 names per header row, used only when
	// re-serializing; the extractor never reads token 0.
	rowLabels []string

	// blankAfter is the row after which the raw export carries a blank
	// separator line, or -1.
	blankAfter int

	fields []fieldSpec

	// minLines is the smallest header-line count the table can be applied
	// to, derived from the largest row index.
	minLines int
}

func newFamilySchema(family Family, rowLabels []string, blankAfter int, fields []fieldSpec) *familySchema {
	maxRow := 0
	for _, f := range fields {
		if f.row > maxRow {
			maxRow = f.row
		}
	}
	return &familySchema{
		family:     family,
		rowLabels:  rowLabels,
		blankAfter: blankAfter,
		fields:     fields,
		minLines:   maxRow + 1,
	}
}

func schemaFor(family Family) *familySchema {
	if family == FamilyZNL {
		return znlSchema
	}
	return zvlSchema
}

// zvlSchema: 22 device rows, then (after the blank separator) 5 trace rows.
var zvlSchema = newFamilySchema(FamilyZVL,
	[]string{
		"Type", "Version", "Date", "Mode", "Center Freq", "Freq Offset",
		"Span", "x-Axis", "Start", "Stop", "Ref Level", "Level Offset",
		"Ref Position", "y-Axis", "Level Range", "Rf Att", "RBW", "VBW",
		"SWT", "Trace Mode", "Detector", "Sweep Count",
		"x-Unit", "y-Unit", "Preamplifier", "Transducer", "Values",
	},
	21,
	[]fieldSpec{
		{name: "model", row: 0, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Model }},
		{name: "version", row: 1, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Version }},
		{name: "date", row: 2, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Date }},
		{name: "mode", row: 3, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Mode }},
		{name: "center_freq", row: 4, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.CenterFreq },
			unit: func(m *Measurement) *string { return &m.Device.CenterUnit }},
		{name: "freq_offset", row: 5, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.FreqOffset },
			unit: func(m *Measurement) *string { return &m.Device.FreqOffsetUnit }},
		{name: "span", row: 6, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.Span },
			unit: func(m *Measurement) *string { return &m.Device.SpanUnit }},
		{name: "x_axis_scale", row: 7, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.XAxisScale }},
		{name: "start_freq", row: 8, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.StartFreq },
			unit: func(m *Measurement) *string { return &m.Device.StartFreqUnit }},
		{name: "stop_freq", row: 9, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.StopFreq },
			unit: func(m *Measurement) *string { return &m.Device.StopFreqUnit }},
		{name: "ref_level", row: 10, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.RefLevel },
			unit: func(m *Measurement) *string { return &m.Device.RefLevelUnit }},
		{name: "level_offset", row: 11, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.LevelOffset },
			unit: func(m *Measurement) *string { return &m.Device.LevelOffsetUnit }},
		{name: "ref_position", row: 12, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.RefPosition },
			unit: func(m *Measurement) *string { return &m.Device.RefPositionUnit }},
		{name: "y_axis_scale", row: 13, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.YAxisScale }},
		{name: "level_range", row: 14, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.LevelRange },
			unit: func(m *Measurement) *string { return &m.Device.LevelRangeUnit }},
		{name: "rf_attenuation", row: 15, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.RFAttenuation },
			unit: func(m *Measurement) *string { return &m.Device.RFAttenuationUnit }},
		{name: "rbw", row: 16, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.RBW },
			unit: func(m *Measurement) *string { return &m.Device.RBWUnit }},
		{name: "vbw", row: 17, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.VBW },
			unit: func(m *Measurement) *string { return &m.Device.VBWUnit }},
		{name: "sweep_time", row: 18, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.SweepTime },
			unit: func(m *Measurement) *string { return &m.Device.SweepTimeUnit }},
		{name: "trace_mode", row: 19, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.TraceMode }},
		{name: "detector", row: 20, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Detector }},
		{name: "sweep_count", row: 21, col: 1, typ: fieldInt,
			n: func(m *Measurement) *int { return &m.Device.SweepCount }},

		{name: "x_unit", row: 22, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.XUnit }},
		{name: "y_unit", row: 23, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.YUnit }},
		{name: "preamp", row: 24, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.Preamp }},
		{name: "transducer", row: 25, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.Transducer }},
		{name: "points", row: 26, col: 1, typ: fieldInt,
			n: func(m *Measurement) *int { return &m.TraceSet.Points }},
	})

// znlSchema: 19 device rows followed directly by 11 trace rows.
var znlSchema = newFamilySchema(FamilyZNL,
	[]string{
		"Type", "Version", "Date", "Mode", "Preamplifier", "Transducer",
		"Center Freq", "Freq Offset", "Start", "Stop", "Span", "Ref Level",
		"Level Offset", "Rf Att", "El Att", "RBW", "VBW", "SWT",
		"Sweep Count",
		"Window", "Ref Position", "Level Range", "x-Axis", "y-Axis",
		"x-Unit", "y-Unit", "Trace", "Trace Mode", "Detector", "Values",
	},
	-1,
	[]fieldSpec{
		{name: "model", row: 0, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Model }},
		{name: "version", row: 1, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Version }},
		{name: "date", row: 2, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Date }},
		{name: "mode", row: 3, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Mode }},
		{name: "preamp", row: 4, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Preamp }},
		{name: "transducer", row: 5, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.Device.Transducer }},
		{name: "center_freq", row: 6, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.CenterFreq },
			unit: func(m *Measurement) *string { return &m.Device.CenterUnit }},
		{name: "freq_offset", row: 7, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.FreqOffset },
			unit: func(m *Measurement) *string { return &m.Device.FreqOffsetUnit }},
		{name: "start_freq", row: 8, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.StartFreq },
			unit: func(m *Measurement) *string { return &m.Device.StartFreqUnit }},
		{name: "stop_freq", row: 9, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.StopFreq },
			unit: func(m *Measurement) *string { return &m.Device.StopFreqUnit }},
		{name: "span", row: 10, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.Span },
			unit: func(m *Measurement) *string { return &m.Device.SpanUnit }},
		{name: "ref_level", row: 11, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.RefLevel },
			unit: func(m *Measurement) *string { return &m.Device.RefLevelUnit }},
		{name: "level_offset", row: 12, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.LevelOffset },
			unit: func(m *Measurement) *string { return &m.Device.LevelOffsetUnit }},
		{name: "rf_attenuation", row: 13, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.RFAttenuation },
			unit: func(m *Measurement) *string { return &m.Device.RFAttenuationUnit }},
		{name: "el_attenuation", row: 14, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.ElAttenuation },
			unit: func(m *Measurement) *string { return &m.Device.ElAttenuationUnit }},
		{name: "rbw", row: 15, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.RBW },
			unit: func(m *Measurement) *string { return &m.Device.RBWUnit }},
		{name: "vbw", row: 16, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.VBW },
			unit: func(m *Measurement) *string { return &m.Device.VBWUnit }},
		{name: "sweep_time", row: 17, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.Device.SweepTime },
			unit: func(m *Measurement) *string { return &m.Device.SweepTimeUnit }},
		{name: "sweep_count", row: 18, col: 1, typ: fieldInt,
			n: func(m *Measurement) *int { return &m.Device.SweepCount }},

		{name: "window", row: 19, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.Window }},
		{name: "ref_position", row: 20, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.TraceSet.RefPosition },
			unit: func(m *Measurement) *string { return &m.TraceSet.RefPositionUnit }},
		{name: "level_range", row: 21, col: 1, typ: fieldFloat,
			num:  func(m *Measurement) *float64 { return &m.TraceSet.LevelRange },
			unit: func(m *Measurement) *string { return &m.TraceSet.LevelRangeUnit }},
		{name: "x_axis_scale", row: 22, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.XAxisScale }},
		{name: "y_axis_scale", row: 23, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.YAxisScale }},
		{name: "x_unit", row: 24, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.XUnit }},
		{name: "y_unit", row: 25, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.YUnit }},
		{name: "trace", row: 26, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.Trace }},
		{name: "trace_mode", row: 27, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.TraceMode }},
		{name: "detector", row: 28, col: 1, typ: fieldString,
			str: func(m *Measurement) *string { return &m.TraceSet.Detector }},
		{name: "points", row: 29, col: 1, typ: fieldInt,
			n: func(m *Measurement) *int { return &m.TraceSet.Points }},
	})
