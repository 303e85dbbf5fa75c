package main

import (
	"errors"
	"os"

	mirage "github.com/alnah/go-mirage"
	"github.com/alnah/go-mirage/internal/assets"
	"github.com/alnah/go-mirage/internal/config"
	"github.com/alnah/go-mirage/internal/fileutil"
	"github.com/alnah/go-mirage/internal/lineio"
)

// Exit codes for the mirage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments, flags, or config
	ExitIO      = 3 // Input unreadable, output unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputOpen) ||
		errors.Is(err, ErrOutputCreate) ||
		errors.Is(err, ErrOutputWrite) ||
		errors.Is(err, lineio.ErrLineDecode) ||
		errors.Is(err, lineio.ErrRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigRead) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, lineio.ErrUnknownEncoding) ||
		errors.Is(err, mirage.ErrInvalidParagraphMode) ||
		errors.Is(err, fileutil.ErrOutputName) ||
		errors.Is(err, ErrOutputInput) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
