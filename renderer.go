package memoir

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// HTMLRenderer prints a complete HTML document to PDF bytes.
type HTMLRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// Renderer backend names.
const (
	BackendRod      = "rod"
	BackendChromedp = "chromedp"
)

// DefaultTimeout bounds page load and printing.
const DefaultTimeout = 30 * time.Second

// PDF page dimensions in inches (US Letter format).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.75
	marginBottomInch  = 0.9 // Extra space for the page number footer
)

// footerTemplate is Chrome's native footer: a right-aligned page number.
const footerTemplate = `<div style="font-size: 9px; font-family: Helvetica, Arial, sans-serif; color: #888; width: 100%; text-align: right; padding: 0 0.75in;">Page <span class="pageNumber"></span></div>`

// NewRenderer returns the renderer for a backend name. An empty name selects rod.
func NewRenderer(backend string, timeout time.Duration) (HTMLRenderer, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	switch strings.ToLower(backend) {
	case "", BackendRod:
		return NewRodRenderer(timeout), nil
	case BackendChromedp:
		return NewChromedpRenderer(timeout), nil
	}
	return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownBackend, backend, BackendRod, BackendChromedp)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
