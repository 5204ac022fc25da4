package memoir

// Notes:
// - Canvas drawing is checked through recordingSurface, which logs the calls
//   a gofpdf document would receive. Geometry is simplified: cells advance Y
//   only when ln == 1, MultiCell always advances one line.
// - Header and footer hooks are not registered on the recording surface; they
//   are covered through real gofpdf output in render_test.go.

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Recording surface
// ---------------------------------------------------------------------------

type cellCall struct {
	w, h   float64
	text   string
	border string
	ln     int
	align  string
	fill   bool
}

type recordingSurface struct {
	pages  int
	x, y   float64
	width  float64
	height float64
	margin float64

	cells  []cellCall
	multi  []string
	writes []string
	fonts  []string
	images []string
	placed []float64 // Widths passed to ImageOptions
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: 210, height: 297, margin: 10}
}

func (s *recordingSurface) AddPage() {
	s.pages++
	s.x, s.y = s.margin, s.margin
}
func (s *recordingSurface) PageNo() int    { return s.pages }
func (s *recordingSurface) PageCount() int { return s.pages }

func (s *recordingSurface) SetFont(family, style string, _ float64) {
	s.fonts = append(s.fonts, family+"/"+style)
}

func (s *recordingSurface) SetTextColor(_, _, _ int) {}
func (s *recordingSurface) SetFillColor(_, _, _ int) {}
func (s *recordingSurface) SetDrawColor(_, _, _ int) {}
func (s *recordingSurface) SetLineWidth(float64)     {}

func (s *recordingSurface) CellFormat(w, h float64, txt, border string, ln int, align string, fill bool, _ int, _ string) {
	s.cells = append(s.cells, cellCall{w: w, h: h, text: txt, border: border, ln: ln, align: align, fill: fill})
	if ln == 1 {
		s.x = s.margin
		s.y += h
		return
	}
	s.x += w
}

func (s *recordingSurface) MultiCell(_, h float64, txt, _, _ string, _ bool) {
	s.multi = append(s.multi, txt)
	s.x = s.margin
	s.y += h
}

func (s *recordingSurface) Write(_ float64, txt string) { s.writes = append(s.writes, txt) }
func (s *recordingSurface) Ln(h float64) {
	s.x = s.margin
	s.y += h
}
func (s *recordingSurface) GetX() float64  { return s.x }
func (s *recordingSurface) SetX(x float64) { s.x = x }
func (s *recordingSurface) GetY() float64  { return s.y }
func (s *recordingSurface) SetY(y float64) { s.y = y }
func (s *recordingSurface) GetPageSize() (float64, float64) {
	return s.width, s.height
}
func (s *recordingSurface) GetMargins() (float64, float64, float64, float64) {
	return s.margin, s.margin, s.margin, s.margin
}

func (s *recordingSurface) RegisterImageOptionsReader(name string, _ gofpdf.ImageOptions, _ io.Reader) *gofpdf.ImageInfoType {
	s.images = append(s.images, name)
	return nil
}

func (s *recordingSurface) ImageOptions(_ string, _, _, w, h float64, _ bool, _ gofpdf.ImageOptions, _ int, _ string) {
	s.placed = append(s.placed, w)
	s.y += h
}

func (s *recordingSurface) Output(w io.Writer) error {
	_, err := io.WriteString(w, "%PDF-recorded")
	return err
}
func (s *recordingSurface) Error() error { return nil }

// ruledRows counts writing-space lines: empty cells with a bottom border.
func (s *recordingSurface) ruledRows() int {
	n := 0
	for _, c := range s.cells {
		if c.text == "" && c.border == "B" {
			n++
		}
	}
	return n
}

func identity(s string) string { return s }

func newTestCanvas(opts ...CanvasOption) (*Canvas, *recordingSurface) {
	s := newRecordingSurface()
	return newCanvas(s, WorkbookTheme(), identity, opts...), s
}

// ---------------------------------------------------------------------------
// TestCanvas_AddWritingSpace
// ---------------------------------------------------------------------------

func TestCanvas_AddWritingSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines int
		want  int
	}{
		{"one line", 1, 1},
		{"six lines", 6, 6},
		{"long answer", 15, 15},
		{"zero draws nothing", 0, 0},
		{"negative draws nothing", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, s := newTestCanvas()
			c.AddWritingSpace(tt.lines)

			if got := s.ruledRows(); got != tt.want {
				t.Errorf("ruled rows = %d, want %d", got, tt.want)
			}
			if len(s.cells) != tt.want {
				t.Errorf("cells = %d, want only the %d ruled rows", len(s.cells), tt.want)
			}
			for _, cell := range s.cells {
				if cell.w != 0 {
					t.Errorf("ruled row width = %v, want 0 (full width)", cell.w)
				}
			}
		})
	}
}

func TestCanvas_WritingSpaceAdvancesCursor(t *testing.T) {
	t.Parallel()

	c, s := newTestCanvas()
	c.AddWritingSpace(4)

	theme := WorkbookTheme()
	want := s.margin + 4*theme.WritingRow + theme.WritingGap
	if s.y != want {
		t.Errorf("y = %v, want %v", s.y, want)
	}
}

// ---------------------------------------------------------------------------
// TestCanvas_Text - Headings, body, labels and bullets
// ---------------------------------------------------------------------------

func TestCanvas_TextBlocks(t *testing.T) {
	t.Parallel()

	c, s := newTestCanvas()
	c.AddTitle("Day 1: RECOGNIZE")
	c.AddSection("Reflection")
	c.AddBodyText("Body & soul.")
	c.AddPrompt("What did you notice?")

	want := []string{"Day 1: RECOGNIZE", "Reflection", "Body & soul.", "What did you notice?"}
	if strings.Join(s.multi, "|") != strings.Join(want, "|") {
		t.Errorf("printed = %q, want %q", s.multi, want)
	}
	if s.pages != 1 {
		t.Errorf("pages = %d, want 1 (opened lazily)", s.pages)
	}
	if s.fonts[0] != "Helvetica/B" {
		t.Errorf("title font = %q, want Helvetica/B", s.fonts[0])
	}
}

func TestCanvas_AddLabeledText(t *testing.T) {
	t.Parallel()

	t.Run("label and text", func(t *testing.T) {
		t.Parallel()

		c, s := newTestCanvas()
		c.AddLabeledText("Trigger:", "stress at work")

		if len(s.writes) != 2 || s.writes[0] != "Trigger: " || s.writes[1] != "stress at work" {
			t.Errorf("writes = %q, want [\"Trigger: \" \"stress at work\"]", s.writes)
		}
	})

	t.Run("label only", func(t *testing.T) {
		t.Parallel()

		c, s := newTestCanvas()
		c.AddLabeledText("Name:", "")

		if len(s.writes) != 1 || s.writes[0] != "Name:" {
			t.Errorf("writes = %q, want [\"Name:\"]", s.writes)
		}
	})
}

func TestCanvas_AddBullet(t *testing.T) {
	t.Parallel()

	c, s := newTestCanvas()
	c.AddBullet("Call a friend")

	if len(s.cells) != 1 || s.cells[0].text != "•" {
		t.Fatalf("cells = %+v, want one glyph cell", s.cells)
	}
	if len(s.multi) != 1 || s.multi[0] != "Call a friend" {
		t.Errorf("multi = %q", s.multi)
	}
}

func TestCanvas_AddPage(t *testing.T) {
	t.Parallel()

	c, s := newTestCanvas()
	c.AddTitle("one")
	c.AddPage()
	c.AddTitle("two")

	if c.PageCount() != 2 || s.pages != 2 {
		t.Errorf("PageCount() = %d, want 2", c.PageCount())
	}
}

func TestCanvas_ContentWidth(t *testing.T) {
	t.Parallel()

	c, _ := newTestCanvas()
	if got := c.ContentWidth(); got != 190 {
		t.Errorf("ContentWidth() = %v, want 190", got)
	}
}

// ---------------------------------------------------------------------------
// TestCanvas_AddTable
// ---------------------------------------------------------------------------

func TestCanvas_AddTable_CellsVerbatim(t *testing.T) {
	t.Parallel()

	c, s := newTestCanvas()
	table := &Table{
		Columns: []Column{{Width: 40}, {Width: 50, Align: AlignRight}, {Width: 60}},
		Rows: [][]string{
			{"Milestone", "Date Achieved", "How I Celebrated"},
			{"24 Hours", "", ""},
			{"1 Week", "  spaced  ", "[ ] & <b>"},
		},
		Header:      true,
		HeaderAlign: AlignCenter,
	}
	if err := c.AddTable(table); err != nil {
		t.Fatalf("AddTable() error = %v", err)
	}

	if len(s.cells) != 9 {
		t.Fatalf("cells = %d, want 9", len(s.cells))
	}
	for i, row := range table.Rows {
		for j, want := range row {
			cell := s.cells[i*3+j]
			if cell.text != want {
				t.Errorf("cell(%d,%d) = %q, want %q", i, j, cell.text, want)
			}
			if cell.border != "1" {
				t.Errorf("cell(%d,%d) border = %q, want 1", i, j, cell.border)
			}
			if cell.w != table.Columns[j].Width {
				t.Errorf("cell(%d,%d) width = %v, want %v", i, j, cell.w, table.Columns[j].Width)
			}
			if (i == 0) != cell.fill {
				t.Errorf("cell(%d,%d) fill = %v", i, j, cell.fill)
			}
			wantLn := 0
			if j == 2 {
				wantLn = 1
			}
			if cell.ln != wantLn {
				t.Errorf("cell(%d,%d) ln = %d, want %d", i, j, cell.ln, wantLn)
			}
		}
	}

	if s.cells[1].align != "C" {
		t.Errorf("header align = %q, want C", s.cells[1].align)
	}
	if s.cells[4].align != "R" {
		t.Errorf("body align = %q, want R", s.cells[4].align)
	}
	if s.cells[0].h != WorkbookTheme().TableRowHeight {
		t.Errorf("row height = %v, want theme default", s.cells[0].h)
	}
}

func TestCanvas_AddTable_Centered(t *testing.T) {
	t.Parallel()

	c, s := newTestCanvas()
	err := c.AddTable(&Table{
		Columns:   []Column{{Width: 90}},
		Rows:      [][]string{{"Crisis Hotline: 988"}},
		RowHeight: 10,
	})
	if err != nil {
		t.Fatalf("AddTable() error = %v", err)
	}
	if s.cells[0].h != 10 {
		t.Errorf("row height = %v, want 10", s.cells[0].h)
	}
}

func TestCanvas_AddTable_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		table   *Table
		wantErr error
	}{
		{"nil", nil, ErrTableEmpty},
		{"no rows", &Table{Columns: []Column{{Width: 10}}}, ErrTableEmpty},
		{"ragged", &Table{Columns: []Column{{Width: 10}, {Width: 10}}, Rows: [][]string{{"a", "b"}, {"c"}}}, ErrRaggedTable},
		{"zero width", &Table{Columns: []Column{{Width: 0}}, Rows: [][]string{{"a"}}}, ErrInvalidColumnWidth},
		{"too wide", &Table{Columns: []Column{{Width: 100}, {Width: 100}}, Rows: [][]string{{"a", "b"}}}, ErrTableTooWide},
		{"bad border", &Table{Columns: []Column{{Width: 10}}, Rows: [][]string{{"a"}}, Border: "dotted"}, ErrInvalidBorder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, s := newTestCanvas()
			err := c.AddTable(tt.table)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddTable() error = %v, want %v", err, tt.wantErr)
			}
			if len(s.cells) != 0 || s.pages != 0 {
				t.Errorf("malformed table drew %d cells on %d pages", len(s.cells), s.pages)
			}
		})
	}
}

func TestCanvas_AddTable_ExactFit(t *testing.T) {
	t.Parallel()

	c, _ := newTestCanvas()
	err := c.AddTable(&Table{
		Columns: []Column{{Width: 63.33}, {Width: 63.33}, {Width: 63.34}},
		Rows:    [][]string{{"a", "b", "c"}},
	})
	if err != nil {
		t.Errorf("AddTable() error = %v, want nil for a table filling the width", err)
	}
}

func TestCellBorder(t *testing.T) {
	t.Parallel()

	box := []struct {
		row, col, rows, cols int
		want                 string
	}{
		{0, 0, 2, 2, "LT"},
		{0, 1, 2, 2, "TR"},
		{1, 0, 2, 2, "LB"},
		{1, 1, 2, 2, "RB"},
		{0, 0, 3, 1, "LTR"},
		{1, 0, 3, 1, "LR"},
		{2, 0, 3, 1, "LRB"},
		{0, 0, 1, 1, "LTRB"},
		{1, 1, 3, 3, ""},
	}
	for _, tt := range box {
		if got := cellBorder(BorderBox, tt.row, tt.col, tt.rows, tt.cols); got != tt.want {
			t.Errorf("cellBorder(box, %d, %d, %d, %d) = %q, want %q", tt.row, tt.col, tt.rows, tt.cols, got, tt.want)
		}
	}

	for _, b := range []Border{"", BorderGrid} {
		if got := cellBorder(b, 1, 1, 3, 3); got != "1" {
			t.Errorf("cellBorder(%q) = %q, want 1", b, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestCanvas_Draw - Block dispatch
// ---------------------------------------------------------------------------

func TestCanvas_Draw(t *testing.T) {
	t.Parallel()

	t.Run("dispatches every kind", func(t *testing.T) {
		t.Parallel()

		c, s := newTestCanvas()
		err := c.Draw([]Block{
			Title("T"),
			Subtitle("S"),
			Section("Sec"),
			Subsection("Sub"),
			Body("B"),
			LabeledBody("L:", "text"),
			Prompt("P"),
			Bullet("x"),
			WritingSpace(3),
			Spacer(5),
			PageBreak(),
			TableBlock(&Table{Columns: []Column{{Width: 20}}, Rows: [][]string{{"cell"}}}),
			Banner("RECOVERY TOOLKIT", 25.4),
		})
		if err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		if got := strings.Join(s.multi, ","); got != "T,S,Sec,Sub,B,P,x" {
			t.Errorf("multi = %q", got)
		}
		if s.ruledRows() != 3 {
			t.Errorf("ruled rows = %d, want 3", s.ruledRows())
		}
		if s.pages != 2 {
			t.Errorf("pages = %d, want 2", s.pages)
		}
		if len(s.images) != 1 {
			t.Errorf("images = %d, want 1", len(s.images))
		}
	})

	t.Run("stops at first failing block", func(t *testing.T) {
		t.Parallel()

		c, s := newTestCanvas()
		err := c.Draw([]Block{
			Title("kept"),
			TableBlock(&Table{Columns: []Column{{Width: 500}}, Rows: [][]string{{"wide"}}}),
			Body("never drawn"),
		})
		if !errors.Is(err, ErrTableTooWide) {
			t.Fatalf("Draw() error = %v, want ErrTableTooWide", err)
		}
		if !strings.Contains(err.Error(), "block 1 (table)") {
			t.Errorf("error %q does not name the block", err)
		}
		if len(s.multi) != 1 || s.multi[0] != "kept" {
			t.Errorf("multi = %q, want only the title", s.multi)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCanvas()
		if err := c.Draw([]Block{{Kind: BlockKind(99)}}); !errors.Is(err, ErrInvalidBlock) {
			t.Errorf("Draw() error = %v, want ErrInvalidBlock", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestCanvas_Bytes
// ---------------------------------------------------------------------------

func TestCanvas_Bytes_OpensFirstPage(t *testing.T) {
	t.Parallel()

	c, s := newTestCanvas()
	data, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if string(data) != "%PDF-recorded" {
		t.Errorf("Bytes() = %q", data)
	}
	if s.pages != 1 {
		t.Errorf("pages = %d, want 1", s.pages)
	}
}
