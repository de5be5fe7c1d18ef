package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pagelift/core"
)

// Layout in points.
const (
	pdfMargin       = 72
	pdfIndent       = 12
	pdfLineHeight   = 1.25
	pdfParagraphGap = 18
)

// PDFRenderer renders a report as an A4 PDF document.
type PDFRenderer struct {
	// Author is written to the document info dictionary when set.
	Author string
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render lays out the report: centered title, generated timestamp, source,
// subtitle, then one justified block per paragraph. Line breaks inside a
// paragraph are kept as soft breaks.
func (r *PDFRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render pdf: nil report")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(report.Title, true)
	pdf.SetCreator("pagelift", true)
	if r.Author != "" {
		pdf.SetAuthor(r.Author, true)
	}
	if !report.GeneratedAt.IsZero() {
		pdf.SetCreationDate(report.GeneratedAt)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 139)
	pdf.MultiCell(0, 18*pdfLineHeight, tr(report.Title), "", "C", false)
	pdf.Ln(20)

	// Generated line with a bold label.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Write(11*pdfLineHeight, GeneratedLabel+" ")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Write(11*pdfLineHeight, report.GeneratedAt.Format(TimeLayout))
	pdf.Ln(11 * pdfLineHeight)

	if src := report.Source.URL; src != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 9*pdfLineHeight, tr(SourceLabel+" "+src), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(12)

	// Subtitle.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 100, 0)
	pdf.MultiCell(0, 14*pdfLineHeight, tr(SubtitleText), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := pageW - left - right - 2*pdfIndent

	for _, p := range paragraphs(report) {
		level, text := headingLevel(p)
		pdf.SetX(left + pdfIndent)
		if level > 0 {
			size := headingSize(level)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(width, size*pdfLineHeight, tr(cleanInlineMarkdown(text)), "", "L", false)
			pdf.Ln(pdfParagraphGap / 2)
			continue
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(width, 11*pdfLineHeight, tr(cleanInlineMarkdown(text)), "", "J", false)
		pdf.Ln(pdfParagraphGap)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func headingSize(level int) float64 {
	sizes := map[int]float64{1: 16, 2: 14, 3: 13, 4: 12}
	if size, ok := sizes[level]; ok {
		return size
	}
	return 11
}

