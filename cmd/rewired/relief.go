package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	memoir "github.com/shauncritzer/memoir"
	"github.com/shauncritzer/memoir/internal/content"
	"github.com/shauncritzer/memoir/internal/hints"
	"github.com/shauncritzer/memoir/internal/pipeline"
)

// ErrReadContent indicates the --content file could not be read.
var ErrReadContent = errors.New("failed to read content")

func runRelief(ctx context.Context, args []string, env *Environment) error {
	f, err := parseReliefFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, log, err := setup(env, f.common)
	if err != nil {
		return err
	}
	defer log.Sync()

	if f.output != "" {
		cfg.Output.ReliefPath = f.output
	}
	if f.template != "" {
		cfg.Template.Path = f.template
	}
	if f.assets != "" {
		cfg.Template.Assets = f.assets
	}
	if f.renderer != "" {
		cfg.Template.Renderer = f.renderer
	}
	if f.timeout != "" {
		cfg.Template.Timeout = f.timeout
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	title, subtitle := content.ReliefTitle, content.ReliefSubtitle
	if f.title != "" {
		title = f.title
	}
	if f.subtitle != "" {
		subtitle = f.subtitle
	}

	fragment, err := loadFragment(ctx, f.content)
	if err != nil {
		return err
	}

	renderer, err := env.NewRenderer(cfg.Template.Renderer, timeout)
	if err != nil {
		return err
	}
	defer renderer.Close()

	opts := []memoir.TemplateOption{memoir.WithRenderer(renderer)}
	if cfg.Template.Path != "" {
		opts = append(opts, memoir.WithTemplateFile(cfg.Template.Path))
	}
	if cfg.Template.Assets != "" {
		opts = append(opts, memoir.WithAssetPath(cfg.Template.Assets))
	}
	builder, err := memoir.NewTemplateBuilder(opts...)
	if err != nil {
		if errors.Is(err, memoir.ErrTemplateNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForTemplateNotFound())
		}
		return err
	}
	defer builder.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out := cfg.ReliefOutputPath()
	log.Debug("Rendering relief toolkit", "renderer", cfg.Template.Renderer, "timeout", timeout, "output", out)
	if err := builder.Generate(ctx, title, subtitle, fragment, out); err != nil {
		switch {
		case errors.Is(err, memoir.ErrBrowserConnect):
			return fmt.Errorf("%w%s", err, hints.ForBrowserConnect(cfg.Template.Renderer, env.Getenv))
		case errors.Is(err, context.DeadlineExceeded):
			return fmt.Errorf("%w%s", err, hints.ForTimeout())
		case errors.Is(err, memoir.ErrWritePDF):
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	log.Info("Relief toolkit generated", "output", out)
	progress(env, f.common.quiet)("✓ PDF generated: %s", out)
	return nil
}

// loadFragment returns the built-in relief body for an empty path, the file
// as-is for HTML, and the goldmark conversion for Markdown.
func loadFragment(ctx context.Context, path string) (string, error) {
	if path == "" {
		return content.ReliefFragment(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadContent, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return pipeline.NewGoldmarkConverter().ToFragment(ctx, string(data))
	}
	return string(data), nil
}
