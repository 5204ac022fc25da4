package memoir

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/shauncritzer/memoir/internal/fileutil"
)

// Compile-time interface check.
var _ HTMLRenderer = (*ChromedpRenderer)(nil)

// ChromedpRenderer prints HTML through a locally installed Chrome driven by
// chromedp. Unlike RodRenderer it never downloads a browser.
type ChromedpRenderer struct {
	timeout time.Duration

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewChromedpRenderer creates a ChromedpRenderer with the given page timeout.
func NewChromedpRenderer(timeout time.Duration) *ChromedpRenderer {
	return &ChromedpRenderer{timeout: timeout}
}

// ensureBrowser starts the browser on first use.
func (r *ChromedpRenderer) ensureBrowser() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browserCtx != nil {
		return nil
	}

	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		opts = append(opts, chromedp.ExecPath(bin))
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.allocCancel = allocCancel
	r.browserCtx = browserCtx
	r.browserCancel = browserCancel
	return nil
}

// Close stops the browser. It is safe to call more than once.
func (r *ChromedpRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browserCtx == nil {
		return nil
	}
	r.browserCancel()
	r.allocCancel()
	r.browserCtx = nil
	return nil
}

// RenderPDF loads html from a temp file in a new tab and prints it with the
// same page geometry as RodRenderer.
func (r *ChromedpRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(html, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(r.browserCtx)
	defer tabCancel()
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	var buf []byte
	if err := chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPaperWidth(paperWidthInches).
			WithPaperHeight(paperHeightInches).
			WithMarginTop(marginInches).
			WithMarginBottom(marginBottomInch).
			WithMarginLeft(marginInches).
			WithMarginRight(marginInches).
			WithPrintBackground(true).
			WithDisplayHeaderFooter(true).
			WithHeaderTemplate("<span></span>").
			WithFooterTemplate(footerTemplate).
			Do(ctx)
		return err
	})); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf, nil
}
