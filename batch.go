package memoir

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Job is one document to render to one output file.
type Job struct {
	Document *Document
	Output   string
}

// Result reports the outcome of one Job.
type Result struct {
	Output string
	Pages  int
	Err    error
}

// OutputPath returns dir joined with the document name plus ".pdf".
func OutputPath(dir string, doc *Document) string {
	return filepath.Join(dir, doc.Name+".pdf")
}

// RenderBatch renders jobs with at most workers running at once. Each job
// gets its own canvas. A failed job does not stop the others; results are
// returned in job order. Jobs not started before ctx is canceled report the
// context error.
func RenderBatch(ctx context.Context, jobs []Job, workers int) []Result {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ResolveWorkers(workers))

	for i, job := range jobs {
		g.Go(func() error {
			r := Result{Output: job.Output}
			if err := ctx.Err(); err != nil {
				r.Err = err
			} else {
				r.Pages, r.Err = RenderFile(job.Document, job.Output)
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()
	return results
}
