package memoir

import "fmt"

// Draw lays out blocks in order. It stops at the first block that cannot be
// drawn; blocks before it remain on the canvas.
func (c *Canvas) Draw(blocks []Block) error {
	for i, b := range blocks {
		if err := c.drawBlock(b); err != nil {
			return fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
	}
	return nil
}

func (c *Canvas) drawBlock(b Block) error {
	switch b.Kind {
	case BlockTitle:
		c.AddTitle(b.Text)
	case BlockSubtitle:
		c.AddSubtitle(b.Text)
	case BlockSection:
		c.AddSection(b.Text)
	case BlockSubsection:
		c.AddSubsection(b.Text)
	case BlockBody:
		if b.Label != "" {
			c.AddLabeledText(b.Label, b.Text)
		} else {
			c.AddBodyText(b.Text)
		}
	case BlockPrompt:
		c.AddPrompt(b.Text)
	case BlockBullet:
		c.AddBullet(b.Text)
	case BlockWritingSpace:
		c.AddWritingSpace(b.Lines)
	case BlockSpacer:
		c.AddSpacer(b.Height)
	case BlockPageBreak:
		c.AddPage()
	case BlockTable:
		return c.AddTable(b.Table)
	case BlockBanner:
		return c.AddBanner(b.Text, b.Height)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidBlock, int(b.Kind))
	}
	return nil
}

// Render validates doc and lays it out on a new canvas configured from the
// document's theme, page settings, header and footer alignment.
func Render(doc *Document) (*Canvas, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	theme, err := ThemeByName(doc.Theme)
	if err != nil {
		return nil, err
	}

	c := NewCanvas(theme, doc.Page,
		WithHeader(doc.Header),
		WithFooterAlign(Align(doc.FooterAlign)),
	)
	if err := c.Draw(doc.Blocks); err != nil {
		return nil, err
	}
	return c, nil
}

// RenderFile renders doc and writes it to path. It returns the page count.
func RenderFile(doc *Document, path string) (int, error) {
	c, err := Render(doc)
	if err != nil {
		return 0, err
	}
	pages := c.PageCount()
	if err := c.Save(path); err != nil {
		return 0, err
	}
	return pages, nil
}
