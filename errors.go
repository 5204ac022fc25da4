package memoir

import "errors"

// Sentinel errors for document validation.
var (
	ErrEmptyDocument      = errors.New("document has no blocks")
	ErrInvalidBlock       = errors.New("invalid block")
	ErrUnknownTheme       = errors.New("unknown theme")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidFooterAlign = errors.New("invalid footer alignment")
	ErrDocumentParse      = errors.New("failed to parse document")
)

// Sentinel errors for table blocks.
var (
	ErrTableEmpty         = errors.New("table has no rows")
	ErrRaggedTable        = errors.New("table row length does not match column count")
	ErrInvalidColumnWidth = errors.New("column width must be positive")
	ErrTableTooWide       = errors.New("table is wider than the printable area")
	ErrInvalidBorder      = errors.New("invalid table border")
)

// Sentinel errors for canvas and template output.
var (
	ErrRender           = errors.New("document rendering failed")
	ErrWritePDF         = errors.New("failed to write PDF")
	ErrBanner           = errors.New("banner rendering failed")
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateParse    = errors.New("failed to parse template")
	ErrTemplateExecute  = errors.New("template rendering failed")
)

// Sentinel errors for headless browser rendering.
var (
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrUnknownBackend = errors.New("unknown renderer backend")
)
