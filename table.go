package memoir

import "fmt"

// widthTolerance absorbs rounding when column widths are derived from inches.
const widthTolerance = 0.01

// AddTable lays out t centered in the printable width. Rows are drawn in
// order, cell text verbatim. The first row is shaded and bold when t.Header
// is set. Returns an error, and draws nothing, if the table is malformed or
// wider than the printable area.
func (c *Canvas) AddTable(t *Table) error {
	if t == nil {
		return ErrTableEmpty
	}
	if err := t.Validate(); err != nil {
		return err
	}
	width := t.Width()
	if avail := c.ContentWidth(); width > avail+widthTolerance {
		return fmt.Errorf("%w: %.1fmm exceeds %.1fmm", ErrTableTooWide, width, avail)
	}

	c.ensurePage()

	rowHeight := t.RowHeight
	if rowHeight == 0 {
		rowHeight = c.theme.TableRowHeight
	}
	border := t.Border
	if border == "" {
		border = BorderGrid
	}
	lineWidth := gridLine
	if border == BorderBox {
		lineWidth = boxLine
	}

	left, _, _, _ := c.pdf.GetMargins()
	x := left + (c.ContentWidth()-width)/2

	fill := c.theme.TableHeaderFill
	c.pdf.SetDrawColor(0, 0, 0)
	c.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	c.pdf.SetLineWidth(lineWidth)

	last := len(t.Columns) - 1
	for i, row := range t.Rows {
		header := t.Header && i == 0
		s := c.theme.TableText
		if header {
			s.Emphasis = "B"
		}
		c.setStyle(s)
		c.pdf.SetX(x)
		for j, cell := range row {
			align := t.Columns[j].Align
			if header && t.HeaderAlign != "" {
				align = t.HeaderAlign
			}
			ln := 0
			if j == last {
				ln = 1
			}
			c.pdf.CellFormat(t.Columns[j].Width, rowHeight, c.tr(cell),
				cellBorder(border, i, j, len(t.Rows), len(t.Columns)), ln, align.pdf(), header, 0, "")
		}
	}

	c.pdf.SetLineWidth(thinLine)
	c.pdf.Ln(c.theme.TableGap)
	return nil
}

// cellBorder returns the gofpdf border string for the cell at (row, col).
// Grid outlines every cell; box outlines only the table's outer edge.
func cellBorder(b Border, row, col, rows, cols int) string {
	if b != BorderBox {
		return "1"
	}
	var s string
	if col == 0 {
		s += "L"
	}
	if row == 0 {
		s += "T"
	}
	if col == cols-1 {
		s += "R"
	}
	if row == rows-1 {
		s += "B"
	}
	return s
}
