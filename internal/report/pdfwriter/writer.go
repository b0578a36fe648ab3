// Package pdfwriter renders a laid-out report document to a PDF file.
// It is a thin adapter: every drawing decision was already made by the
// layout engine, so this package only translates blocks into fpdf calls.
package pdfwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"codeberg.org/go-pdf/fpdf"

	"dojoscore/internal/report"
)

const fontFamily = "Helvetica"

// Writer writes report documents into OutDir.
type Writer struct {
	OutDir string
}

// Write renders doc to OutDir/filename and returns the full path. The
// file is written to a temporary name and renamed into place, so a
// failed render never leaves a partial report behind.
func (w *Writer) Write(doc *report.Document, filename string) (path string, err error) {
	// fpdf reports some failures by panicking; keep that inside the
	// renderer boundary.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering pdf: %v", r)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, block := range page.Blocks {
			drawBlock(pdf, block)
		}
	}
	if pdf.Err() {
		return "", fmt.Errorf("rendering pdf: %w", pdf.Error())
	}

	outDir := w.OutDir
	if outDir == "" {
		outDir = "."
	}
	path = filepath.Join(outDir, filename)
	tmp := path + ".tmp"
	if err := pdf.OutputFileAndClose(tmp); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return path, nil
}

func drawBlock(pdf *fpdf.Fpdf, block report.Block) {
	switch b := block.(type) {
	case report.TextBlock:
		r, g, bl := hexToRGB(b.Color)
		pdf.SetTextColor(r, g, bl)
		pdf.SetFont(fontFamily, string(b.Style), b.Size)
		x := b.X
		switch b.Align {
		case report.AlignCenter:
			x -= pdf.GetStringWidth(b.Text) / 2
		case report.AlignRight:
			x -= pdf.GetStringWidth(b.Text)
		}
		pdf.Text(x, b.Y, b.Text)

	case report.RectBlock:
		if b.Fill != "" {
			r, g, bl := hexToRGB(b.Fill)
			pdf.SetFillColor(r, g, bl)
		}
		if b.Stroke != "" {
			r, g, bl := hexToRGB(b.Stroke)
			pdf.SetDrawColor(r, g, bl)
		}
		if b.Radius > 0 {
			pdf.RoundedRect(b.X, b.Y, b.W, b.H, b.Radius, "1234", string(b.Mode))
		} else {
			pdf.Rect(b.X, b.Y, b.W, b.H, string(b.Mode))
		}

	case report.LineBlock:
		r, g, bl := hexToRGB(b.Color)
		pdf.SetDrawColor(r, g, bl)
		pdf.SetLineWidth(b.Width)
		pdf.Line(b.X1, b.Y1, b.X2, b.Y2)
	}
}

// hexToRGB parses a "#RRGGBB" color. Malformed input falls back to
// black rather than failing the render.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
