package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/shauncritzer/memoir"
)

// ErrUsage wraps flag parsing failures and stray arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// workbooksFlags holds flags for the workbooks command.
type workbooksFlags struct {
	common  commonFlags
	output  string
	workers int
	header  string
}

// toolkitFlags holds flags for the toolkit command.
type toolkitFlags struct {
	common commonFlags
	output string
}

// reliefFlags holds flags for the relief command.
type reliefFlags struct {
	common   commonFlags
	output   string
	template string
	assets   string
	content  string
	title    string
	subtitle string
	renderer string
	timeout  string
}

// seedFlags holds flags for the seed command.
type seedFlags struct {
	common      commonFlags
	databaseURL string
	product     string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print debug logs")
}

// newFlagSet creates a ContinueOnError flag set whose messages go to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args and rejects positional arguments, which no
// command accepts. -h/--help comes back as flag.ErrHelp unwrapped.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}

func parseWorkbooksFlags(args []string, w io.Writer) (*workbooksFlags, error) {
	f := &workbooksFlags{}
	fs := newFlagSet("workbooks", w, printWorkbooksUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent workbooks (0 = auto)")
	fs.StringVar(&f.header, "header", "", "header printed on every page")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	if f.workers < 0 || f.workers > memoir.MaxWorkers {
		return nil, fmt.Errorf("%w: --workers must be between 0 and %d, got %d", ErrUsage, memoir.MaxWorkers, f.workers)
	}
	return f, nil
}

func parseToolkitFlags(args []string, w io.Writer) (*toolkitFlags, error) {
	f := &toolkitFlags{}
	fs := newFlagSet("toolkit", w, printToolkitUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

func parseReliefFlags(args []string, w io.Writer) (*reliefFlags, error) {
	f := &reliefFlags{}
	fs := newFlagSet("relief", w, printReliefUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.StringVar(&f.template, "template", "", "HTML template file")
	fs.StringVar(&f.assets, "assets", "", "directory overriding the built-in template and stylesheet")
	fs.StringVar(&f.content, "content", "", "content fragment (.html or .md)")
	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVar(&f.subtitle, "subtitle", "", "page subtitle")
	fs.StringVar(&f.renderer, "renderer", "", "rod or chromedp")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "rendering timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

func parseSeedFlags(args []string, w io.Writer) (*seedFlags, error) {
	f := &seedFlags{}
	fs := newFlagSet("seed", w, printSeedUsage)
	fs.StringVar(&f.databaseURL, "database-url", "", "connection URL (default $DATABASE_URL)")
	fs.StringVar(&f.product, "product", "", "product ID whose lessons are replaced")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}
