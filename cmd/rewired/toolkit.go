package main

import (
	"context"
	"errors"
	"fmt"

	memoir "github.com/shauncritzer/memoir"
	"github.com/shauncritzer/memoir/internal/content"
	"github.com/shauncritzer/memoir/internal/hints"
)

func runToolkit(ctx context.Context, args []string, env *Environment) error {
	f, err := parseToolkitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, log, err := setup(env, f.common)
	if err != nil {
		return err
	}
	defer log.Sync()

	if f.output != "" {
		cfg.Output.ToolkitPath = f.output
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := content.Toolkit()
	if err != nil {
		return err
	}

	out := cfg.ToolkitOutputPath()
	pages, err := memoir.RenderFile(doc, out)
	if err != nil {
		if errors.Is(err, memoir.ErrWritePDF) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	log.Info("Toolkit generated", "output", out, "pages", pages)
	progress(env, f.common.quiet)("PDF created successfully: %s", out)
	return nil
}
