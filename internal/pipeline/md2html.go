package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates Markdown conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// FragmentConverter converts Markdown to an HTML fragment.
type FragmentConverter interface {
	ToFragment(ctx context.Context, markdown string) (string, error)
}

// GoldmarkConverter converts Markdown using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// Compile-time interface check.
var _ FragmentConverter = (*GoldmarkConverter)(nil)

// NewGoldmarkConverter creates a GoldmarkConverter with GFM tables and task
// lists, footnotes and syntax highlighting. Raw HTML in the source is kept,
// so authors can wrap passages in the template's box classes.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToFragment converts markdown to HTML. Goldmark has no context support, so
// conversion runs in a goroutine and the call returns early on cancellation.
func (c *GoldmarkConverter) ToFragment(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
