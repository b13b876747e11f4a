package main

import (
	"errors"
	"os"

	html2img "github.com/alnah/go-html2img"
	"github.com/alnah/go-html2img/internal/config"
)

// Exit codes for the html2img CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, html2img.ErrBrowserConnect) ||
		errors.Is(err, html2img.ErrPageCreate) ||
		errors.Is(err, html2img.ErrPageLoad) ||
		errors.Is(err, html2img.ErrEvalScript) ||
		errors.Is(err, html2img.ErrCapture) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, html2img.ErrInputNotFound) ||
		errors.Is(err, html2img.ErrDirectoryNotFound) ||
		errors.Is(err, html2img.ErrWriteImage) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, html2img.ErrUnsupportedFormat) ||
		errors.Is(err, html2img.ErrInvalidWidth) ||
		errors.Is(err, html2img.ErrInvalidScale) ||
		errors.Is(err, html2img.ErrInvalidQuality) ||
		errors.Is(err, html2img.ErrInvalidWait) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
