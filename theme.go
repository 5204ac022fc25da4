package memoir

import (
	"fmt"
	"strings"
)

// Theme names.
const (
	ThemeWorkbook = "workbook"
	ThemeToolkit  = "toolkit"
)

// Style describes how a block of text is printed.
type Style struct {
	Family     string  // Core font family: Helvetica, Times, Courier
	Emphasis   string  // "", "B", "I" or "BI"
	Size       float64 // pt
	Color      Color
	Align      Align
	LineHeight float64 // mm per wrapped line
	Before     float64 // mm of space above the block
	After      float64 // mm of space below the block
}

// Theme maps block kinds to styles and holds the decoration settings of a page.
type Theme struct {
	Name string

	Title      Style
	Subtitle   Style
	Section    Style
	Subsection Style
	Body       Style
	Prompt     Style
	Bullet     Style

	Header Style
	Footer Style

	WritingRow float64 // Height of one ruled line
	WritingGap float64 // Space after the last ruled line

	TableText       Style
	TableRowHeight  float64
	TableHeaderFill Color
	TableGap        float64

	BulletGlyph  string
	BulletIndent float64

	PageSize string
	Margin   float64 // mm
	BreakAt  float64 // Bottom margin that triggers an automatic page break
}

// style returns the text style for a block kind.
func (t Theme) style(k BlockKind) Style {
	switch k {
	case BlockTitle:
		return t.Title
	case BlockSubtitle:
		return t.Subtitle
	case BlockSection:
		return t.Section
	case BlockSubsection:
		return t.Subsection
	case BlockPrompt:
		return t.Prompt
	case BlockBullet:
		return t.Bullet
	default:
		return t.Body
	}
}

var (
	teal    = Color{0, 128, 128}
	ink     = Color{26, 26, 26}
	charcol = Color{51, 51, 51}
	muted   = Color{60, 60, 60}
	shade   = Color{240, 240, 240}
)

// WorkbookTheme returns the style of the daily course workbooks.
func WorkbookTheme() Theme {
	const family = "Helvetica"
	return Theme{
		Name:       ThemeWorkbook,
		Title:      Style{Family: family, Emphasis: "B", Size: 24, Color: teal, LineHeight: 15, After: 5},
		Subtitle:   Style{Family: family, Size: 13, Color: muted, Align: AlignCenter, LineHeight: 8, After: 3},
		Section:    Style{Family: family, Emphasis: "B", Size: 16, Color: Black, LineHeight: 10, After: 3},
		Subsection: Style{Family: family, Emphasis: "B", Size: 13, Color: Black, LineHeight: 8, After: 2},
		Body:       Style{Family: family, Size: 11, Color: Black, LineHeight: 6, After: 3},
		Prompt:     Style{Family: family, Emphasis: "I", Size: 11, Color: muted, LineHeight: 6, After: 2},
		Bullet:     Style{Family: family, Size: 11, Color: Black, LineHeight: 6, After: 1},

		Header: Style{Family: family, Emphasis: "B", Size: 10, Color: Gray, Align: AlignCenter, LineHeight: 10, After: 5},
		Footer: Style{Family: family, Emphasis: "I", Size: 8, Color: Gray, Align: AlignCenter, LineHeight: 10},

		WritingRow: 8,
		WritingGap: 3,

		TableText:       Style{Family: family, Size: 10, Color: Black},
		TableRowHeight:  8,
		TableHeaderFill: shade,
		TableGap:        4,

		BulletGlyph:  "•",
		BulletIndent: 5,

		PageSize: PageSizeA4,
		Margin:   10,
		BreakAt:  15,
	}
}

// ToolkitTheme returns the style of the long-form recovery toolkit.
// Sizes follow a Letter page with 0.75in margins.
func ToolkitTheme() Theme {
	const family = "Helvetica"
	return Theme{
		Name:       ThemeToolkit,
		Title:      Style{Family: family, Emphasis: "B", Size: 24, Color: ink, Align: AlignCenter, LineHeight: 10.5, After: 10.6},
		Subtitle:   Style{Family: family, Size: 14, Color: charcol, Align: AlignCenter, LineHeight: 6.5, After: 4.2},
		Section:    Style{Family: family, Emphasis: "B", Size: 16, Color: ink, LineHeight: 7, Before: 7, After: 4.2},
		Subsection: Style{Family: family, Emphasis: "B", Size: 13, Color: charcol, LineHeight: 6, Before: 4.2, After: 3.5},
		Body:       Style{Family: family, Size: 11, Color: Black, LineHeight: 5.6, After: 3.5},
		Prompt:     Style{Family: family, Emphasis: "I", Size: 11, Color: muted, LineHeight: 5.6, After: 2},
		Bullet:     Style{Family: family, Size: 11, Color: Black, LineHeight: 5.6, After: 1.5},

		Header: Style{Family: family, Emphasis: "I", Size: 9, Color: Gray, Align: AlignCenter, LineHeight: 8, After: 4},
		Footer: Style{Family: family, Emphasis: "I", Size: 8, Color: Gray, Align: AlignRight, LineHeight: 10},

		WritingRow: 8,
		WritingGap: 3,

		TableText:       Style{Family: family, Size: 10, Color: Black},
		TableRowHeight:  7,
		TableHeaderFill: shade,
		TableGap:        5,

		BulletGlyph:  "•",
		BulletIndent: 6,

		PageSize: PageSizeLetter,
		Margin:   19.05,
		BreakAt:  19.05,
	}
}

// ThemeByName returns the named theme. An empty name selects the workbook theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", ThemeWorkbook:
		return WorkbookTheme(), nil
	case ThemeToolkit:
		return ToolkitTheme(), nil
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}
