package memoir

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/shauncritzer/memoir/internal/assets"
	"github.com/shauncritzer/memoir/internal/fileutil"
)

// TemplateData is the value a page template is executed with.
type TemplateData struct {
	Title      string        // Escaped on output
	Subtitle   string        // Escaped on output
	Content    template.HTML // Inserted verbatim
	Stylesheet template.CSS
}

// TemplateBuilder fills one HTML template with a title, a subtitle and a
// content fragment and prints the result to PDF. The template is read and
// parsed once, at construction.
type TemplateBuilder struct {
	tmpl         *template.Template
	css          string
	renderer     HTMLRenderer
	ownsRenderer bool
}

type templateConfig struct {
	path      string
	source    string
	css       string
	assetPath string
	renderer  HTMLRenderer
	timeout   time.Duration
}

// TemplateOption configures a TemplateBuilder.
type TemplateOption func(*templateConfig)

// WithTemplateFile reads the template from path instead of the built-in one.
// A missing file makes NewTemplateBuilder fail with ErrTemplateNotFound.
func WithTemplateFile(path string) TemplateOption {
	return func(c *templateConfig) {
		c.path = path
	}
}

// WithTemplateSource uses src as the template text.
func WithTemplateSource(src string) TemplateOption {
	return func(c *templateConfig) {
		c.source = src
	}
}

// WithStylesheet replaces the built-in stylesheet.
func WithStylesheet(css string) TemplateOption {
	return func(c *templateConfig) {
		c.css = css
	}
}

// WithAssetPath loads the built-in template and stylesheet from a custom
// directory first, falling back to the embedded copies.
func WithAssetPath(dir string) TemplateOption {
	return func(c *templateConfig) {
		c.assetPath = dir
	}
}

// WithRenderer sets the HTML-to-PDF renderer. The caller keeps ownership and
// must close it.
func WithRenderer(r HTMLRenderer) TemplateOption {
	return func(c *templateConfig) {
		c.renderer = r
	}
}

// WithTimeout sets the page timeout of the default renderer.
// Panics if d <= 0 (programmer error).
func WithTimeout(d time.Duration) TemplateOption {
	if d <= 0 {
		panic(fmt.Sprintf("memoir: timeout must be positive, got %v", d))
	}
	return func(c *templateConfig) {
		c.timeout = d
	}
}

// NewTemplateBuilder loads and parses the template. Without WithRenderer it
// prints through a RodRenderer owned by the builder.
func NewTemplateBuilder(opts ...TemplateOption) (*TemplateBuilder, error) {
	cfg := templateConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	loader, err := assets.NewAssetResolver(cfg.assetPath)
	if err != nil {
		return nil, err
	}

	src, err := loadTemplateSource(cfg, loader)
	if err != nil {
		return nil, err
	}

	css := cfg.css
	if css == "" {
		css, err = loader.LoadStyle(assets.DefaultName)
		if err != nil {
			return nil, err
		}
	}

	tmpl, err := template.New("page").Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	b := &TemplateBuilder{tmpl: tmpl, css: css, renderer: cfg.renderer}
	if b.renderer == nil {
		b.renderer = NewRodRenderer(cfg.timeout)
		b.ownsRenderer = true
	}
	return b, nil
}

func loadTemplateSource(cfg templateConfig, loader assets.AssetLoader) (string, error) {
	switch {
	case cfg.path != "":
		data, err := os.ReadFile(cfg.path) // #nosec G304 -- template path is user-provided
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, cfg.path)
			}
			return "", fmt.Errorf("reading template: %w", err)
		}
		return string(data), nil
	case cfg.source != "":
		return cfg.source, nil
	}

	src, err := loader.LoadTemplate(assets.DefaultName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}
	return src, nil
}

// RenderHTML fills the template in a single pass. title and subtitle are
// HTML-escaped; contentHTML is inserted as-is and not validated.
func (b *TemplateBuilder) RenderHTML(title, subtitle, contentHTML string) (string, error) {
	var buf bytes.Buffer
	data := TemplateData{
		Title:      title,
		Subtitle:   subtitle,
		Content:    template.HTML(contentHTML), // #nosec G203 -- author-supplied fragment
		Stylesheet: template.CSS(b.css),        // #nosec G203 -- bundled or operator-supplied
	}
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateExecute, err)
	}
	return buf.String(), nil
}

// Generate renders the page and writes the PDF to outputPath, creating parent
// directories and replacing any existing file. Malformed content surfaces as
// a renderer error.
func (b *TemplateBuilder) Generate(ctx context.Context, title, subtitle, contentHTML, outputPath string) error {
	page, err := b.RenderHTML(title, subtitle, contentHTML)
	if err != nil {
		return err
	}

	pdf, err := b.renderer.RenderPDF(ctx, page)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFile(outputPath, pdf); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePDF, err)
	}
	return nil
}

// Close releases the renderer if the builder created it.
func (b *TemplateBuilder) Close() error {
	if b.ownsRenderer && b.renderer != nil {
		return b.renderer.Close()
	}
	return nil
}
