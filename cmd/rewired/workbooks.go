package main

import (
	"context"
	"errors"
	"fmt"

	memoir "github.com/shauncritzer/memoir"
	"github.com/shauncritzer/memoir/internal/content"
	"github.com/shauncritzer/memoir/internal/hints"
)

func runWorkbooks(ctx context.Context, args []string, env *Environment) error {
	f, err := parseWorkbooksFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, log, err := setup(env, f.common)
	if err != nil {
		return err
	}
	defer log.Sync()

	if f.output != "" {
		cfg.Output.WorkbookDir = f.output
	}
	if f.workers > 0 {
		cfg.Workbook.Workers = f.workers
	}
	if f.header != "" {
		cfg.Workbook.Header = f.header
	}

	docs, err := content.Workbooks()
	if err != nil {
		return err
	}

	dir := cfg.WorkbookOutputDir()
	jobs := make([]memoir.Job, len(docs))
	for i, doc := range docs {
		if cfg.Workbook.Header != "" {
			doc.Header = cfg.Workbook.Header
		}
		jobs[i] = memoir.Job{Document: doc, Output: memoir.OutputPath(dir, doc)}
	}

	workers := memoir.ResolveWorkers(cfg.Workbook.Workers)
	log.Debug("Rendering workbooks", "count", len(jobs), "workers", workers, "dir", dir)

	say := progress(env, f.common.quiet)
	say("Generating 7-Day Reset Workbooks...")

	start := env.Now()
	results := memoir.RenderBatch(ctx, jobs, workers)

	var errs []error
	for i, r := range results {
		if r.Err != nil {
			log.Error("Workbook failed", "output", r.Output, "error", r.Err)
			errs = append(errs, fmt.Errorf("%s: %w", r.Output, r.Err))
			continue
		}
		log.Debug("Workbook written", "output", r.Output, "pages", r.Pages)
		say("✓ %s", workbookLabel(docs[i]))
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		if errors.Is(err, memoir.ErrWritePDF) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	log.Info("Workbooks generated", "count", len(results), "dir", dir, "elapsed", env.Now().Sub(start))
	say("")
	say("✅ All workbooks generated successfully!")
	return nil
}

// workbookLabel returns the first title of doc ("Day 1: RECOGNIZE"), or
// its name when it has none.
func workbookLabel(doc *memoir.Document) string {
	for _, b := range doc.Blocks {
		if b.Kind == memoir.BlockTitle {
			return b.Text
		}
	}
	return doc.Name
}
