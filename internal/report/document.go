// Package report turns a completed assessment into a fully laid-out,
// paginated document: every text run, rectangle, and line carries an
// explicit position in page-content millimeters. The layout is pure
// arithmetic over fixed page constants, so identical inputs always
// produce an identical document. Rendering the blocks to an actual file
// is the writer's job (see report/pdfwriter).
package report

import (
	"fmt"
	"strings"
	"time"
)

// Align positions a text run relative to its X coordinate.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// FontStyle selects the font variant for a text run.
type FontStyle string

const (
	StyleNormal FontStyle = ""
	StyleBold   FontStyle = "B"
)

// RectMode controls whether a rectangle is filled, stroked, or both.
type RectMode string

const (
	RectFill       RectMode = "F"
	RectStroke     RectMode = "D"
	RectFillStroke RectMode = "FD"
)

// Block is one positioned drawing instruction on a page.
type Block interface {
	isBlock()
}

// TextBlock is a single line of text at a baseline position. Size is in
// points; X/Y are page millimeters. For AlignCenter and AlignRight the X
// coordinate is the anchor the text is centered on or ends at.
type TextBlock struct {
	X, Y  float64
	Text  string
	Size  float64
	Style FontStyle
	Color string
	Align Align
}

// RectBlock is a filled and/or stroked rectangle. Radius > 0 rounds the
// corners. Fill and Stroke are hex colors; unused ones are empty.
type RectBlock struct {
	X, Y, W, H float64
	Radius     float64
	Fill       string
	Stroke     string
	Mode       RectMode
}

// LineBlock is a straight stroked line.
type LineBlock struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          string
}

func (TextBlock) isBlock() {}
func (RectBlock) isBlock() {}
func (LineBlock) isBlock() {}

// Page is an ordered sequence of blocks; draw order matters because
// fills paint under later text.
type Page struct {
	Blocks []Block
}

// Document is the laid-out report: page geometry plus the pages
// themselves, ready for a writer to render.
type Document struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Pages      []Page
}

// BlockCount returns the total number of blocks across all pages.
func (d *Document) BlockCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Blocks)
	}
	return n
}

// Filename builds the report file name from the recipient's name (or
// "user" when none was given) and the generation date.
func Filename(userName string, generatedAt time.Time) string {
	name := "user"
	if strings.TrimSpace(userName) != "" {
		name = strings.Join(strings.Fields(userName), "_")
	}
	return fmt.Sprintf("Martial_Arts_Business_Assessment_%s_%s.pdf",
		name, generatedAt.Format("01-02-2006"))
}
