package report

import (
	"fmt"
	"time"

	"dojoscore/internal/domain"
	"dojoscore/internal/scoring"
)

// A4 portrait geometry and the fixed card/table constants, all in
// millimeters except font sizes (points).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 15.0
	contentWidth = pageWidth - 2*margin

	pageBreakTopOffset = 10.0 // cursor lands at margin+10 on a fresh page

	summaryCardHeight = 60.0
	weakCardHeight    = 50.0
	strongCardHeight  = 40.0
	areaCardsPerRow   = 2
	maxAreaCards      = 6

	tableRowHeight = 10.0
	nextStepsBoxH  = 70.0
)

// Report color palette, matching the product's fresh theme.
const (
	colorPrimary   = "#00ACC1"
	colorSuccess   = "#26A69A"
	colorWarning   = "#FF7043"
	colorDanger    = "#EF5350"
	colorText      = "#37474F"
	colorLightText = "#78909C"
	colorBorder    = "#E0E0E0"
	colorBG        = "#FFFFFF"
	colorLightBG   = "#FAFAFA"
)

// NextSteps is the fixed recommended action list printed near the end of
// every report and on the terminal results screen.
var NextSteps = [5]string{
	"Focus on improving your lowest-scoring areas first",
	"Implement the missing checklist items in each category",
	"Schedule a follow-up assessment in 90 days to track progress",
	"Consider booking a consultation to get personalized advice",
	"Explore our resources designed specifically for martial arts school owners",
}

// Build lays out the full report for a completed assessment. The
// generation time is an input, so the same assessment and timestamp
// always produce the same document.
func Build(a *domain.Assessment, generatedAt time.Time) *Document {
	b := &builder{
		doc: &Document{
			PageWidth:  pageWidth,
			PageHeight: pageHeight,
			Margin:     margin,
		},
	}
	b.newPage()
	b.y = margin

	weak := scoring.WeakAreasForResults(a)
	strong := scoring.StrongAreas(a)

	b.header(a, generatedAt)
	b.scoreSummary(a, weak, strong)
	b.areaCards("Areas Needing Improvement", colorPrimary, weak, weakCardHeight, a, true,
		"Great job! You've rated yourself highly in all areas.", colorSuccess)
	b.areaCards("Your Strengths", colorSuccess, strong, strongCardHeight, a, false,
		"You have opportunities to improve in all areas of your business.", colorDanger)
	b.categoryTable(a)
	b.nextStepsBox()
	b.footer(generatedAt)

	return b.doc
}

type builder struct {
	doc *Document
	y   float64
}

func (b *builder) newPage() {
	b.doc.Pages = append(b.doc.Pages, Page{})
	b.y = margin + pageBreakTopOffset
}

// ensure starts a new page when the block about to be emitted would run
// past the usable height. Blocks are never split across pages.
func (b *builder) ensure(needed float64) {
	if b.y+needed > pageHeight-margin {
		b.newPage()
	}
}

func (b *builder) add(blocks ...Block) {
	p := &b.doc.Pages[len(b.doc.Pages)-1]
	p.Blocks = append(p.Blocks, blocks...)
}

func (b *builder) text(x, y float64, s string, size float64, style FontStyle, color string, align Align) {
	b.add(TextBlock{X: x, Y: y, Text: s, Size: size, Style: style, Color: color, Align: align})
}

// wrappedText emits wrapped lines starting at y and returns the Y just
// past the last line.
func (b *builder) wrappedText(s string, x, y, maxWidth, size float64, color string) float64 {
	lines := wrapText(s, maxWidth, size)
	for i, line := range lines {
		b.text(x, y+float64(i)*wrapLineGap, line, size, StyleNormal, color, AlignLeft)
	}
	return y + float64(len(lines))*wrapLineGap
}

func bandColor(band domain.Band) string {
	switch band {
	case domain.BandStrong:
		return colorSuccess
	case domain.BandAverage:
		return colorWarning
	default:
		return colorDanger
	}
}

// ── sections ─────────────────────────────────────────────────────────────────

func (b *builder) header(a *domain.Assessment, generatedAt time.Time) {
	y := b.y
	b.add(LineBlock{X1: margin, Y1: y + 15, X2: pageWidth - margin, Y2: y + 15, Width: 0.5, Color: colorPrimary})
	b.text(margin, y+10, "Martial Arts Business Assessment", 20, StyleBold, colorPrimary, AlignLeft)
	b.text(margin, y+20, "Comprehensive Business Evaluation", 12, StyleNormal, colorLightText, AlignLeft)
	b.text(pageWidth-margin, y+10, "Date: "+generatedAt.Format("1/2/2006"), 10, StyleNormal, colorText, AlignRight)
	if a.UserInfo != nil {
		b.text(pageWidth-margin, y+20, "Prepared for: "+a.UserInfo.Name, 10, StyleNormal, colorText, AlignRight)
	}
	b.y += 30
}

func (b *builder) scoreSummary(a *domain.Assessment, weak, strong []domain.Category) {
	y := b.y
	cardW := contentWidth * 0.48
	n := len(a.Categories())
	avg := scoring.AverageScore(a)
	outOfTen := scoring.ScoreOutOfTen(a)

	// Left card: the big score.
	b.add(RectBlock{X: margin, Y: y, W: cardW, H: summaryCardHeight, Radius: 3,
		Fill: colorBG, Stroke: colorBorder, Mode: RectFillStroke})
	center := margin + cardW/2
	b.text(center, y+10, "Overall Business Score", 14, StyleBold, colorPrimary, AlignCenter)

	scoreStr := fmt.Sprintf("%.1f", outOfTen)
	scoreW := TextWidth(scoreStr, 36)
	denomW := TextWidth("/10", 36)
	b.text(center-denomW/2, y+35, scoreStr, 36, StyleBold, bandColor(domain.BandFor(int(avg))), AlignRight)
	b.text(center+scoreW/2-denomW/2+2, y+35, "/10", 16, StyleNormal, colorLightText, AlignLeft)

	b.text(center, y+45, fmt.Sprintf("Based on assessment across %d business categories", n),
		9, StyleNormal, colorLightText, AlignCenter)

	status := "All Areas Strong"
	statusColor := colorSuccess
	if len(weak) > 0 {
		status = fmt.Sprintf("%d Areas Need Work", len(weak))
		statusColor = colorWarning
	}
	b.text(center, y+55, status, 10, StyleBold, statusColor, AlignCenter)

	// Right card: the four-count grid.
	sumX := margin + cardW + 10
	b.add(RectBlock{X: sumX, Y: y, W: cardW, H: summaryCardHeight, Radius: 3,
		Fill: colorBG, Stroke: colorBorder, Mode: RectFillStroke})
	b.text(sumX+cardW/2, y+10, "Assessment Summary", 14, StyleBold, colorPrimary, AlignCenter)

	boxW := cardW * 0.42
	boxH := 18.0
	gapX := (cardW - boxW*2) / 3
	gapY := 6.0

	counts := []struct {
		value int
		label string
		color string
	}{
		{n, "Categories Assessed", colorPrimary},
		{len(weak), "Areas Needing Improvement", colorDanger},
		{len(strong), "Strong Areas", colorSuccess},
		{scoring.AverageAreaCount(a), "Average Areas", colorWarning},
	}
	for i, c := range counts {
		col := float64(i % 2)
		row := float64(i / 2)
		bx := sumX + gapX + col*(boxW+gapX)
		by := y + 18 + row*(boxH+gapY)
		b.add(RectBlock{X: bx, Y: by, W: boxW, H: boxH, Radius: 2, Stroke: colorBorder, Mode: RectStroke})
		b.text(bx+boxW/2, by+10, fmt.Sprintf("%d", c.value), 14, StyleBold, c.color, AlignCenter)
		b.text(bx+boxW/2, by+16, c.label, 8, StyleNormal, colorLightText, AlignCenter)
	}

	b.y += summaryCardHeight + 20
}

func (b *builder) sectionTitle(title, color string) {
	b.ensure(20)
	b.text(margin, b.y, title, 16, StyleBold, color, AlignLeft)
	b.add(LineBlock{X1: margin, Y1: b.y + 5, X2: pageWidth - margin, Y2: b.y + 5, Width: 0.5, Color: color})
	b.y += 15
}

// areaCards renders a weak- or strong-area section: up to six categories
// as two-per-row cards, or a single banner when the list is empty.
func (b *builder) areaCards(title, titleColor string, areas []domain.Category, cardH float64,
	a *domain.Assessment, withMissing bool, emptyText, emptyColor string) {

	b.sectionTitle(title, titleColor)

	if len(areas) == 0 {
		b.add(RectBlock{X: margin, Y: b.y, W: contentWidth, H: 20, Radius: 3, Fill: colorLightBG, Mode: RectFill})
		b.text(margin+contentWidth/2, b.y+12, emptyText, 12, StyleBold, emptyColor, AlignCenter)
		b.y += 30
		return
	}

	shown := len(areas)
	if shown > maxAreaCards {
		shown = maxAreaCards
	}
	cardW := contentWidth/areaCardsPerRow - 5
	rows := (shown + areaCardsPerRow - 1) / areaCardsPerRow

	for row := 0; row < rows; row++ {
		b.ensure(cardH + 10)
		for col := 0; col < areaCardsPerRow; col++ {
			idx := row*areaCardsPerRow + col
			if idx >= shown {
				continue
			}
			cat := areas[idx]
			result, _ := a.Result(cat.ID)
			x := margin + float64(col)*(cardW+10)
			y := b.y

			b.add(RectBlock{X: x, Y: y, W: cardW, H: cardH, Radius: 3,
				Fill: colorBG, Stroke: colorBorder, Mode: RectFillStroke})
			b.text(x+5, y+10, cat.Title, 12, StyleBold, colorText, AlignLeft)
			b.text(x+cardW-15, y+10, fmt.Sprintf("%d/5", result.Score), 10, StyleNormal,
				bandColor(domain.BandFor(result.Score)), AlignCenter)

			descEnd := b.wrappedText(cat.Description, x+5, y+20, cardW-10, 9, colorLightText)

			if withMissing {
				b.add(RectBlock{X: x + 5, Y: descEnd + 2, W: cardW - 10, H: 12, Radius: 2,
					Fill: colorLightBG, Mode: RectFill})
				b.text(x+8, descEnd+8, "Missing elements:", 8, StyleBold, colorText, AlignLeft)
				b.text(x+45, descEnd+8, fmt.Sprintf("%d of %d", scoring.MissingCount(a, cat), len(cat.ChecklistItems)),
					8, StyleNormal, colorText, AlignLeft)
			}
		}
		b.y += cardH + 10
	}
}

func (b *builder) categoryTable(a *domain.Assessment) {
	b.sectionTitle("Complete Category Breakdown", colorText)

	colWidths := [4]float64{contentWidth * 0.5, contentWidth * 0.15, contentWidth * 0.15, contentWidth * 0.2}
	colStarts := [4]float64{
		margin,
		margin + colWidths[0],
		margin + colWidths[0] + colWidths[1],
		margin + colWidths[0] + colWidths[1] + colWidths[2],
	}

	b.ensure(tableRowHeight)
	b.add(RectBlock{X: margin, Y: b.y, W: contentWidth, H: tableRowHeight, Fill: colorLightBG, Mode: RectFill})
	b.text(colStarts[0]+2, b.y+7, "Category", 10, StyleBold, colorText, AlignLeft)
	b.text(colStarts[1]+colWidths[1]/2, b.y+7, "Score", 10, StyleBold, colorText, AlignCenter)
	b.text(colStarts[2]+colWidths[2]/2, b.y+7, "Checklist", 10, StyleBold, colorText, AlignCenter)
	b.text(colStarts[3]+colWidths[3]/2, b.y+7, "Status", 10, StyleBold, colorText, AlignCenter)
	b.y += tableRowHeight

	for i, cat := range a.Categories() {
		b.ensure(tableRowHeight)
		result, _ := a.Result(cat.ID)
		band := domain.BandFor(result.Score)

		fill := colorBG
		if i%2 == 1 {
			fill = colorLightBG
		}
		b.add(RectBlock{X: margin, Y: b.y, W: contentWidth, H: tableRowHeight, Fill: fill, Mode: RectFill})

		name := truncateToWidth(cat.Title, colWidths[0]-4, 9)
		b.text(colStarts[0]+2, b.y+7, name, 9, StyleNormal, colorText, AlignLeft)
		b.text(colStarts[1]+colWidths[1]/2, b.y+7, fmt.Sprintf("%d/5", result.Score),
			9, StyleBold, bandColor(band), AlignCenter)
		b.text(colStarts[2]+colWidths[2]/2, b.y+7,
			fmt.Sprintf("%d/%d", result.CheckedCount(), len(cat.ChecklistItems)),
			9, StyleNormal, colorText, AlignCenter)
		b.text(colStarts[3]+colWidths[3]/2, b.y+7, band.Label(), 8, StyleBold, bandColor(band), AlignCenter)
		b.y += tableRowHeight
	}
}

func (b *builder) nextStepsBox() {
	b.ensure(nextStepsBoxH + 10)
	y := b.y
	b.add(RectBlock{X: margin, Y: y, W: contentWidth, H: nextStepsBoxH, Radius: 3,
		Fill: colorLightBG, Stroke: colorBorder, Mode: RectFillStroke})
	b.text(margin+10, y+10, "Recommended Next Steps", 14, StyleBold, colorPrimary, AlignLeft)
	for i, step := range NextSteps {
		b.text(margin+10, y+25+float64(i)*8, fmt.Sprintf("%d. %s", i+1, step),
			10, StyleNormal, colorText, AlignLeft)
	}
	b.y += nextStepsBoxH + 10
}

// footer draws the attribution lines at the bottom of the final page.
func (b *builder) footer(generatedAt time.Time) {
	center := pageWidth / 2
	b.text(center, pageHeight-25,
		"This assessment was created to help martial arts school owners identify and close gaps in their business operations.",
		9, StyleNormal, colorLightText, AlignCenter)
	b.text(center, pageHeight-20, "For more information and resources, contact The Odyssey Group.",
		9, StyleNormal, colorLightText, AlignCenter)
	b.text(center, pageHeight-15,
		fmt.Sprintf("© %d The Odyssey Group. All rights reserved.", generatedAt.Year()),
		9, StyleNormal, colorLightText, AlignCenter)
}
