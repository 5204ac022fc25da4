package main

import (
	"errors"
	"os"

	memoir "github.com/shauncritzer/memoir"
	"github.com/shauncritzer/memoir/internal/assets"
	"github.com/shauncritzer/memoir/internal/config"
	"github.com/shauncritzer/memoir/internal/seed"
)

// Exit codes for the rewired CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // All documents written or lessons seeded
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or missing DATABASE_URL
	ExitIO       = 3 // File not found, permission denied
	ExitBrowser  = 4 // Browser/Chrome errors
	ExitDatabase = 5 // Connect, delete or insert failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, memoir.ErrBrowserConnect) ||
		errors.Is(err, memoir.ErrPageCreate) ||
		errors.Is(err, memoir.ErrPageLoad) ||
		errors.Is(err, memoir.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Database errors (exit 5)
	var se *seed.Error
	if errors.As(err, &se) {
		return ExitDatabase
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, seed.ErrMissingURL) ||
		errors.Is(err, seed.ErrInvalidURL) ||
		errors.Is(err, seed.ErrUnsupportedScheme) ||
		errors.Is(err, memoir.ErrUnknownBackend) ||
		errors.Is(err, memoir.ErrTemplateNotFound) ||
		errors.Is(err, memoir.ErrTemplateParse) ||
		errors.Is(err, memoir.ErrDocumentParse) ||
		errors.Is(err, memoir.ErrInvalidBlock) ||
		errors.Is(err, memoir.ErrUnknownTheme) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadContent) ||
		errors.Is(err, memoir.ErrWritePDF) {
		return ExitIO
	}

	return ExitGeneral
}
