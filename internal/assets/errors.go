package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("stylesheet not found")
	ErrTemplateNotFound = errors.New("page template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath is returned when --assets is not a readable directory.
	ErrInvalidBasePath = errors.New("asset directory is not a directory")
	ErrAssetRead       = errors.New("reading asset file")

	// ErrPathTraversal is returned when a resolved asset, symlinks included,
	// lands outside the asset directory.
	ErrPathTraversal = errors.New("asset path escapes the asset directory")
)
