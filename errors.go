package html2img

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputNotFound     = errors.New("input file not found")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrRenderFailed      = errors.New("render failed")
	ErrDirectoryNotFound = errors.New("directory not found")

	// Browser session errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrEvalScript     = errors.New("script evaluation failed")
	ErrCapture        = errors.New("screenshot capture failed")
	ErrWriteImage     = errors.New("failed to write image file")

	// Option validation errors.
	ErrInvalidWidth   = errors.New("invalid viewport width")
	ErrInvalidScale   = errors.New("invalid scale factor")
	ErrInvalidQuality = errors.New("invalid JPEG quality")
	ErrInvalidWait    = errors.New("invalid wait duration")
)
