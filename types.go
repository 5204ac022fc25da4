package memoir

import (
	"fmt"
	"math"
	"strings"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
)

// Footer alignment constants.
const (
	FooterCenter = "center"
	FooterRight  = "right"
)

// Margin bounds in millimetres.
const (
	MinMargin = 5.0
	MaxMargin = 50.0
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	Gray  = Color{128, 128, 128}
)

// Align is the horizontal alignment of a text block or table column.
type Align string

// Alignment constants. The zero value aligns left.
const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// pdf returns the single-letter alignment code used by the canvas.
func (a Align) pdf() string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	case AlignJustify:
		return "J"
	default:
		return "L"
	}
}

func (a Align) valid() bool {
	switch a {
	case "", AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// BlockKind identifies the layout behavior of a block.
type BlockKind int

// Block kinds.
const (
	BlockTitle BlockKind = iota + 1
	BlockSubtitle
	BlockSection
	BlockSubsection
	BlockBody
	BlockPrompt
	BlockBullet
	BlockWritingSpace
	BlockSpacer
	BlockTable
	BlockPageBreak
	BlockBanner
)

var blockKindNames = map[BlockKind]string{
	BlockTitle:        "title",
	BlockSubtitle:     "subtitle",
	BlockSection:      "section",
	BlockSubsection:   "subsection",
	BlockBody:         "body",
	BlockPrompt:       "prompt",
	BlockBullet:       "bullet",
	BlockWritingSpace: "writing",
	BlockSpacer:       "space",
	BlockTable:        "table",
	BlockPageBreak:    "page",
	BlockBanner:       "banner",
}

func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Block is one unit of document content.
type Block struct {
	Kind   BlockKind
	Text   string
	Label  string  // Bold run printed before Text (body blocks only)
	Lines  int     // Number of ruled rows (writing space)
	Height float64 // Vertical size in mm (spacer, banner)
	Table  *Table
}

// Title returns a document title block.
func Title(text string) Block { return Block{Kind: BlockTitle, Text: text} }

// Subtitle returns a centered subtitle block.
func Subtitle(text string) Block { return Block{Kind: BlockSubtitle, Text: text} }

// Section returns a section heading block.
func Section(text string) Block { return Block{Kind: BlockSection, Text: text} }

// Subsection returns a third-level heading block.
func Subsection(text string) Block { return Block{Kind: BlockSubsection, Text: text} }

// Body returns a body text block.
func Body(text string) Block { return Block{Kind: BlockBody, Text: text} }

// LabeledBody returns a body block whose label is printed in bold.
func LabeledBody(label, text string) Block {
	return Block{Kind: BlockBody, Label: label, Text: text}
}

// Prompt returns a reflective prompt block.
func Prompt(text string) Block { return Block{Kind: BlockPrompt, Text: text} }

// Bullet returns a bulleted item block.
func Bullet(text string) Block { return Block{Kind: BlockBullet, Text: text} }

// WritingSpace returns a block of n ruled blank lines.
func WritingSpace(n int) Block { return Block{Kind: BlockWritingSpace, Lines: n} }

// Spacer returns a fixed vertical gap of h millimetres.
func Spacer(h float64) Block { return Block{Kind: BlockSpacer, Height: h} }

// PageBreak returns a block that starts a new page.
func PageBreak() Block { return Block{Kind: BlockPageBreak} }

// TableBlock returns a table block.
func TableBlock(t *Table) Block { return Block{Kind: BlockTable, Table: t} }

// Banner returns a full-width lettered band h millimetres high.
func Banner(text string, h float64) Block {
	return Block{Kind: BlockBanner, Text: text, Height: h}
}

// Validate checks that the block carries what its kind needs.
func (b Block) Validate() error {
	switch b.Kind {
	case BlockTitle, BlockSubtitle, BlockSection, BlockSubsection, BlockPrompt, BlockBullet:
		if strings.TrimSpace(b.Text) == "" {
			return fmt.Errorf("%w: %s block has no text", ErrInvalidBlock, b.Kind)
		}
	case BlockBody:
		if strings.TrimSpace(b.Text) == "" && strings.TrimSpace(b.Label) == "" {
			return fmt.Errorf("%w: body block has no text", ErrInvalidBlock)
		}
	case BlockWritingSpace:
		if b.Lines < 1 {
			return fmt.Errorf("%w: writing space needs at least 1 line, got %d", ErrInvalidBlock, b.Lines)
		}
	case BlockSpacer:
		if b.Height <= 0 || math.IsNaN(b.Height) {
			return fmt.Errorf("%w: spacer height must be positive", ErrInvalidBlock)
		}
	case BlockBanner:
		if strings.TrimSpace(b.Text) == "" || b.Height <= 0 {
			return fmt.Errorf("%w: banner needs text and a positive height", ErrInvalidBlock)
		}
	case BlockTable:
		if b.Table == nil {
			return fmt.Errorf("%w: table block has no table", ErrInvalidBlock)
		}
		return b.Table.Validate()
	case BlockPageBreak:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidBlock, int(b.Kind))
	}
	return nil
}

// Border selects how table cells are outlined.
type Border string

// Border modes. The zero value draws a full grid.
const (
	BorderGrid Border = "grid"
	BorderBox  Border = "box"
)

// Column describes one table column.
type Column struct {
	Width float64 `yaml:"width"` // mm
	Align Align   `yaml:"align"`
}

// Table is a grid of text cells laid out with fixed column widths.
// Cell text is printed verbatim.
type Table struct {
	Columns     []Column   `yaml:"columns"`
	Rows        [][]string `yaml:"rows"`
	Header      bool       `yaml:"header"`      // First row is a shaded, bold header
	HeaderAlign Align      `yaml:"headerAlign"` // Empty = per-column alignment
	Border      Border     `yaml:"border"`
	RowHeight   float64    `yaml:"rowHeight"` // mm, 0 = theme default
}

// Width returns the sum of the column widths.
func (t *Table) Width() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c.Width
	}
	return w
}

// Validate checks the table's shape. It does not know the page size;
// Canvas.AddTable additionally rejects tables wider than the printable area.
func (t *Table) Validate() error {
	if len(t.Rows) == 0 {
		return ErrTableEmpty
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidColumnWidth)
	}
	for i, c := range t.Columns {
		if c.Width <= 0 || math.IsNaN(c.Width) || math.IsInf(c.Width, 0) {
			return fmt.Errorf("%w: column %d has width %v", ErrInvalidColumnWidth, i, c.Width)
		}
		if !c.Align.valid() {
			return fmt.Errorf("%w: column %d has alignment %q", ErrInvalidBlock, i, c.Align)
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedTable, i, len(row), len(t.Columns))
		}
	}
	switch t.Border {
	case "", BorderGrid, BorderBox:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBorder, t.Border)
	}
	if !t.HeaderAlign.valid() {
		return fmt.Errorf("%w: header alignment %q", ErrInvalidBlock, t.HeaderAlign)
	}
	if t.RowHeight < 0 {
		return fmt.Errorf("%w: negative row height", ErrInvalidBlock)
	}
	return nil
}

// PageSettings configures paper size and margins.
type PageSettings struct {
	Size   string  `yaml:"size"`   // "a4" or "letter"
	Margin float64 `yaml:"margin"` // mm on left, top and right; 0 = size default
}

// Validate checks that page settings are usable.
func (p PageSettings) Validate() error {
	switch strings.ToLower(p.Size) {
	case "", PageSizeA4, PageSizeLetter:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.0f and %.0f mm)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// Document is an ordered sequence of blocks plus page decoration.
type Document struct {
	Name        string       // Base name used for the output file
	Header      string       // Printed centered at the top of every page
	Theme       string       // "workbook" or "toolkit"
	Page        PageSettings
	FooterAlign string       // "center" or "right"
	Blocks      []Block
}

// Validate checks the document and every block in it.
func (d *Document) Validate() error {
	if len(d.Blocks) == 0 {
		return ErrEmptyDocument
	}
	if _, err := ThemeByName(d.Theme); err != nil {
		return err
	}
	if err := d.Page.Validate(); err != nil {
		return err
	}
	switch d.FooterAlign {
	case "", FooterCenter, FooterRight:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFooterAlign, d.FooterAlign)
	}
	for i, b := range d.Blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}
