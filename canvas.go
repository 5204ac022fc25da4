package memoir

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/shauncritzer/memoir/internal/fileutil"
)

// surface is the subset of the gofpdf drawing API used by Canvas.
// It lets tests record drawing calls without producing a PDF.
type surface interface {
	AddPage()
	PageNo() int
	PageCount() int
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(width float64)
	CellFormat(w, h float64, txtStr, borderStr string, ln int, alignStr string, fill bool, link int, linkStr string)
	MultiCell(w, h float64, txtStr, borderStr, alignStr string, fill bool)
	Write(h float64, txtStr string)
	Ln(h float64)
	GetX() float64
	SetX(x float64)
	GetY() float64
	SetY(y float64)
	GetPageSize() (width, height float64)
	GetMargins() (left, top, right, bottom float64)
	RegisterImageOptionsReader(imgName string, options gofpdf.ImageOptions, r io.Reader) *gofpdf.ImageInfoType
	ImageOptions(imageNameStr string, x, y, w, h float64, flow bool, options gofpdf.ImageOptions, link int, linkStr string)
	Output(w io.Writer) error
	Error() error
}

// Compile-time interface check.
var _ surface = (*gofpdf.Fpdf)(nil)

// Line widths in mm.
const (
	thinLine   = 0.2
	gridLine   = 0.35
	boxLine    = 0.7
	footerRise = 15
)

// Canvas lays out content blocks top to bottom on a paged PDF surface.
// Text wraps at the printable width and pages break automatically.
// A Canvas is not safe for concurrent use; give each document its own.
type Canvas struct {
	pdf         surface
	theme       Theme
	header      string
	footerAlign Align
	tr          func(string) string
	pageStart   float64
	images      int
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithHeader sets the text printed at the top of every page.
func WithHeader(text string) CanvasOption {
	return func(c *Canvas) {
		c.header = text
	}
}

// WithFooterAlign sets where the "Page N" footer is printed.
func WithFooterAlign(align Align) CanvasOption {
	return func(c *Canvas) {
		if align != "" {
			c.footerAlign = align
		}
	}
}

// NewCanvas creates a canvas backed by gofpdf using the theme's page size and
// margins unless page overrides them.
func NewCanvas(theme Theme, page PageSettings, opts ...CanvasOption) *Canvas {
	size := theme.PageSize
	if page.Size != "" {
		size = strings.ToLower(page.Size)
	}
	margin := theme.Margin
	if page.Margin > 0 {
		margin = page.Margin
	}

	pdf := gofpdf.New("P", "mm", size, "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, theme.BreakAt)
	pdf.SetCreator("memoir", true)

	c := newCanvas(pdf, theme, pdf.UnicodeTranslatorFromDescriptor(""), opts...)
	pdf.SetHeaderFunc(c.drawHeader)
	pdf.SetFooterFunc(c.drawFooter)
	return c
}

// newCanvas wires a canvas to an arbitrary surface. Header and footer hooks
// are the caller's responsibility.
func newCanvas(s surface, theme Theme, tr func(string) string, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		pdf:         s,
		theme:       theme,
		footerAlign: theme.Footer.Align,
		tr:          tr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// drawHeader runs at the start of every page.
func (c *Canvas) drawHeader() {
	if c.header != "" {
		s := c.theme.Header
		c.setStyle(s)
		c.pdf.CellFormat(0, s.LineHeight, c.tr(c.header), "", 1, s.Align.pdf(), false, 0, "")
		c.pdf.Ln(s.After)
	}
	c.pageStart = c.pdf.GetY()
}

// drawFooter runs at the end of every page.
func (c *Canvas) drawFooter() {
	s := c.theme.Footer
	c.pdf.SetY(-footerRise)
	c.setStyle(s)
	c.pdf.CellFormat(0, s.LineHeight, fmt.Sprintf("Page %d", c.pdf.PageNo()), "", 0, c.footerAlign.pdf(), false, 0, "")
}

func (c *Canvas) setStyle(s Style) {
	c.pdf.SetFont(s.Family, s.Emphasis, s.Size)
	c.pdf.SetTextColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
}

// ensurePage opens the first page lazily so the header hook sees configured options.
func (c *Canvas) ensurePage() {
	if c.pdf.PageNo() == 0 {
		c.pdf.AddPage()
	}
}

// atPageStart reports whether nothing has been drawn below the header yet.
func (c *Canvas) atPageStart() bool {
	return c.pdf.GetY() <= c.pageStart
}

// ContentWidth returns the printable width between the left and right margins.
func (c *Canvas) ContentWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	left, _, right, _ := c.pdf.GetMargins()
	return w - left - right
}

func (c *Canvas) addText(kind BlockKind, text string) {
	c.ensurePage()
	s := c.theme.style(kind)
	if s.Before > 0 && !c.atPageStart() {
		c.pdf.Ln(s.Before)
	}
	c.setStyle(s)
	c.pdf.MultiCell(0, s.LineHeight, c.tr(text), "", s.Align.pdf(), false)
	if s.After > 0 {
		c.pdf.Ln(s.After)
	}
}

// AddTitle prints the document title.
func (c *Canvas) AddTitle(text string) { c.addText(BlockTitle, text) }

// AddSubtitle prints a subtitle below the title.
func (c *Canvas) AddSubtitle(text string) { c.addText(BlockSubtitle, text) }

// AddSection prints a section heading.
func (c *Canvas) AddSection(text string) { c.addText(BlockSection, text) }

// AddSubsection prints a third-level heading.
func (c *Canvas) AddSubsection(text string) { c.addText(BlockSubsection, text) }

// AddBodyText prints a paragraph of body text.
func (c *Canvas) AddBodyText(text string) { c.addText(BlockBody, text) }

// AddPrompt prints a reflective question in the prompt style.
func (c *Canvas) AddPrompt(text string) { c.addText(BlockPrompt, text) }

// AddLabeledText prints a bold label followed by body text on the same line.
func (c *Canvas) AddLabeledText(label, text string) {
	c.ensurePage()
	s := c.theme.Body
	bold := s
	bold.Emphasis = "B"

	c.setStyle(bold)
	run := label
	if text != "" {
		run += " "
	}
	c.pdf.Write(s.LineHeight, c.tr(run))
	if text != "" {
		c.setStyle(s)
		c.pdf.Write(s.LineHeight, c.tr(text))
	}
	c.pdf.Ln(s.LineHeight)
	if s.After > 0 {
		c.pdf.Ln(s.After)
	}
}

// AddBullet prints a bulleted item with a hanging indent.
func (c *Canvas) AddBullet(text string) {
	c.ensurePage()
	s := c.theme.Bullet
	left, _, _, _ := c.pdf.GetMargins()
	c.setStyle(s)
	c.pdf.SetX(left + c.theme.BulletIndent)
	c.pdf.CellFormat(c.theme.BulletIndent, s.LineHeight, c.tr(c.theme.BulletGlyph), "", 0, "L", false, 0, "")
	c.pdf.MultiCell(0, s.LineHeight, c.tr(text), "", s.Align.pdf(), false)
	if s.After > 0 {
		c.pdf.Ln(s.After)
	}
}

// AddWritingSpace prints n full-width ruled blank lines followed by a small gap.
// Non-positive n draws nothing.
func (c *Canvas) AddWritingSpace(n int) {
	if n < 1 {
		return
	}
	c.ensurePage()
	c.pdf.SetDrawColor(0, 0, 0)
	c.pdf.SetLineWidth(thinLine)
	for range n {
		c.pdf.CellFormat(0, c.theme.WritingRow, "", "B", 1, "L", false, 0, "")
	}
	c.pdf.Ln(c.theme.WritingGap)
}

// AddSpacer advances the cursor by h millimetres.
func (c *Canvas) AddSpacer(h float64) {
	c.ensurePage()
	c.pdf.Ln(h)
}

// AddPage starts a new page. The first call opens page 1.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

// PageCount returns the number of pages laid out so far.
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// Bytes finalizes the document and returns the PDF. The canvas cannot be
// drawn on afterwards.
func (c *Canvas) Bytes() ([]byte, error) {
	c.ensurePage()
	if err := c.pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Save finalizes the document and writes it to path, creating parent
// directories and replacing any existing file.
func (c *Canvas) Save(path string) error {
	data, err := c.Bytes()
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePDF, err)
	}
	return nil
}
