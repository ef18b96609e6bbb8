package export

import (
	"fmt"
	"strings"

	"github.com/marcus/notepad/internal/colorutil"
	"github.com/marcus/notepad/internal/notes"
)

// Geometry holds the page layout constants, in document units (mm).
type Geometry struct {
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	LineHeight   float64
	TextWidth    float64

	// Sizes used for headings and footers, in points.
	HeadingFontSize float64
	FooterFontSize  float64
}

// DefaultGeometry returns the layout used for notes.pdf.
func DefaultGeometry() Geometry {
	return Geometry{
		MarginTop:       10,
		MarginBottom:    20,
		MarginLeft:      10,
		LineHeight:      10,
		TextWidth:       180,
		HeadingFontSize: 16,
		FooterFontSize:  12,
	}
}

// UsableHeight returns the vertical limit for body lines on a page of
// the given height.
func (g Geometry) UsableHeight(pageHeight float64) float64 {
	return pageHeight - g.MarginTop - g.MarginBottom
}

// Section reports where one note landed in the document.
type Section struct {
	Label     string // footer label, "Page {index+1}"
	Heading   string
	FirstPage int
	LastPage  int
	Lines     int
}

// Result summarizes a finished layout.
type Result struct {
	Pages    int
	Sections []Section
}

// canvas is the subset of *fpdf.Fpdf the layout loop drives.
type canvas interface {
	AddPage()
	PageNo() int
	GetPageSize() (width, height float64)
	SetFontSize(size float64)
	SetTextColor(r, g, b int)
	SplitText(txt string, w float64) []string
	Text(x, y float64, txt string)
}

// FooterLabel returns the footer printed after the note at index.
func FooterLabel(index int) string {
	return fmt.Sprintf("Page %d", index+1)
}

// layout places every note on c. Each note after the first starts on a new
// page; body lines that would cross the usable height continue on a fresh
// page. encode converts text for output and may be nil.
func layout(c canvas, list []notes.Note, g Geometry, encode func(string) string) Result {
	if encode == nil {
		encode = func(s string) string { return s }
	}

	var res Result
	if len(list) == 0 {
		return res
	}

	c.AddPage()
	_, pageHeight := c.GetPageSize()
	usable := g.UsableHeight(pageHeight)

	for i, n := range list {
		if i > 0 {
			c.AddPage()
		}
		sec := Section{
			Label:     FooterLabel(i),
			Heading:   n.Heading,
			FirstPage: c.PageNo(),
		}

		c.SetTextColor(0, 0, 0)
		c.SetFontSize(g.HeadingFontSize)
		c.Text(g.MarginLeft, g.MarginTop, encode(n.Heading))

		r, gr, b := colorutil.RGB255(n.Color)
		c.SetTextColor(r, gr, b)
		c.SetFontSize(bodyFontSize(n.FontSize))

		lines := c.SplitText(sanitize(n.Content), g.TextWidth)
		y := g.MarginTop + g.LineHeight
		for _, line := range lines {
			if y+g.LineHeight > usable {
				c.AddPage()
				y = g.MarginTop
			}
			c.Text(g.MarginLeft, y, encode(line))
			y += g.LineHeight
		}

		c.SetTextColor(0, 0, 0)
		c.SetFontSize(g.FooterFontSize)
		c.Text(g.MarginLeft, pageHeight-g.MarginBottom, sec.Label)

		sec.LastPage = c.PageNo()
		sec.Lines = len(lines)
		res.Sections = append(res.Sections, sec)
	}

	res.Pages = c.PageNo()
	return res
}

func bodyFontSize(size notes.FontSize) float64 {
	if size <= 0 {
		return float64(notes.DefaultFontSize)
	}
	return float64(size)
}

// sanitize limits text to runes the core fonts can measure. Anything past
// Latin-1 becomes '?'.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r':
			return '\n'
		case r > 0xFF:
			return '?'
		}
		return r
	}, s)
}
