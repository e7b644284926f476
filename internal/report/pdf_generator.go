package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/user/specan_eval_go/internal/analysis"
	"github.com/user/specan_eval_go/internal/parser"
)

const (
	inchToMm      = 25.4
	pdfPageWidth  = 8.27 * inchToMm // A4 portrait
	pdfPageHeight = 11.69 * inchToMm
	pdfMargin     = 0.5 * inchToMm
	pdfContentWidth = pdfPageWidth - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and manual Y tracking for flowing
// content.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageHeight:  pdfPageHeight - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 13)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(name string) {
	if fn, ok := s.styles[name]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) writeParagraph(text, styleName, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}
	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height
	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// settingsRows selects the settings shown in the per-measurement table.
// Fields a family does not emit are skipped.
func settingsRows(m *parser.Measurement) [][2]string {
	d := &m.Device
	t := &m.TraceSet
	rows := [][2]string{
		{"Instrument", d.Model},
		{"Firmware", d.Version},
		{"Date", d.Date},
		{"Mode", d.Mode},
		{"Center frequency", fmt.Sprintf("%g %s", d.CenterFreq, d.CenterUnit)},
		{"Span", fmt.Sprintf("%g %s", d.Span, d.SpanUnit)},
		{"Start", fmt.Sprintf("%g %s", d.StartFreq, d.StartFreqUnit)},
		{"Stop", fmt.Sprintf("%g %s", d.StopFreq, d.StopFreqUnit)},
		{"Reference level", fmt.Sprintf("%g %s", d.RefLevel, d.RefLevelUnit)},
		{"RF attenuation", fmt.Sprintf("%g %s", d.RFAttenuation, d.RFAttenuationUnit)},
		{"RBW", fmt.Sprintf("%g %s", d.RBW, d.RBWUnit)},
		{"VBW", fmt.Sprintf("%g %s", d.VBW, d.VBWUnit)},
		{"Sweep time", fmt.Sprintf("%g %s", d.SweepTime, d.SweepTimeUnit)},
		{"Sweep count", fmt.Sprintf("%d", d.SweepCount)},
		{"Points", fmt.Sprintf("%d", t.Points)},
	}
	switch m.Family {
	case parser.FamilyZVL:
		rows = append(rows,
			[2]string{"Trace mode", d.TraceMode},
			[2]string{"Detector", d.Detector},
			[2]string{"Preamplifier", t.Preamp},
			[2]string{"Transducer", t.Transducer},
		)
	case parser.FamilyZNL:
		rows = append(rows,
			[2]string{"Trace mode", t.TraceMode},
			[2]string{"Detector", t.Detector},
			[2]string{"Preamplifier", d.Preamp},
			[2]string{"Transducer", d.Transducer},
			[2]string{"El. attenuation", fmt.Sprintf("%g %s", d.ElAttenuation, d.ElAttenuationUnit)},
		)
	}
	return rows
}

func (s *pdfStyler) writeSettingsTable(m *parser.Measurement) {
	rows := settingsRows(m)
	colWidths := []float64{0.35 * pdfContentWidth, 0.65 * pdfContentWidth}

	s.checkAddPage(s.lineHeight * (float64(len(rows)) + 1.0))

	sY := s.currentY
	sX := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range []string{"Setting", "Value"} {
		s.pdf.SetXY(sX, sY)
		s.pdf.CellFormat(colWidths[i], s.lineHeight, header, "1", 0, "L", true, 0, "")
		sX += colWidths[i]
	}
	sY += s.lineHeight
	s.currentY = sY

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		sY = s.currentY
		sX = pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(sX, sY)
			s.pdf.CellFormat(colWidths[i], s.lineHeight, cell, "1", 0, "L", false, 0, "")
			sX += colWidths[i]
		}
		s.currentY = sY + s.lineHeight
	}
}

// BuildPDFReport writes a measurement report: one section per parsed file
// with its settings table, trace summary and plot, followed by the batch
// overlay plot when provided under the "overlay" key in plotImages.
// plotImages is keyed by measurement path.
func BuildPDFReport(filepath, title string, traces parser.MultiTrace,
	summaries []analysis.TraceSummary, plotImages map[string][]byte) error {

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	if title == "" {
		title = "Spectrum Analyzer Measurement Report"
	}
	styler.writeParagraph(title, "h1", "C")
	styler.addSpacer(4)
	styler.writeParagraph(fmt.Sprintf("%d measurement file(s)", len(traces)), "normal", "L")
	styler.addSpacer(4)

	summaryByPath := make(map[string]analysis.TraceSummary, len(summaries))
	for _, s := range summaries {
		summaryByPath[s.Path] = s
	}

	imgWidth := pdfContentWidth * 0.95
	imgHeight := imgWidth * (400.0 / 640.0)

	for i, m := range traces {
		if i > 0 {
			pdf.AddPage()
			styler.currentY = styler.contentTopY
		}
		styler.writeParagraph(m.Path, "h2", "L")
		styler.writeSettingsTable(m)
		styler.addSpacer(3)

		if sum, ok := summaryByPath[m.Path]; ok {
			styler.writeParagraph(fmt.Sprintf(
				"Peak %.2f %s at %g %s, minimum %.2f %s, %d points",
				sum.PeakLevel, m.TraceSet.YUnit, sum.PeakFreq, m.TraceSet.XUnit,
				sum.MinLevel, m.TraceSet.YUnit, sum.Points), "normal", "L")
			styler.addSpacer(2)
		}

		if imgBytes, ok := plotImages[m.Path]; ok && len(imgBytes) > 0 {
			styler.addImage(imgBytes, m.Path, imgWidth, imgHeight, "")
		} else {
			styler.writeParagraph("Plot not available.", "normal", "L")
		}
	}

	if imgBytes, ok := plotImages["overlay"]; ok && len(imgBytes) > 0 {
		pdf.AddPage()
		styler.currentY = styler.contentTopY
		styler.writeParagraph("All Traces", "h2", "L")
		styler.addImage(imgBytes, "overlay", imgWidth, imgHeight, "Overlay of all parsed traces")
	}

	return pdf.OutputFileAndClose(filepath)
}
