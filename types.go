package html2img

import (
	"fmt"
	"time"
)

// Format is an output image format.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// Valid reports whether the format is one of the supported set.
func (f Format) Valid() bool {
	switch f {
	case FormatPNG, FormatJPEG:
		return true
	}
	return false
}

// Ext returns the file extension for the format, without the leading dot.
func (f Format) Ext() string { return string(f) }

// Default render option values.
const (
	DefaultWidth   = 1200
	DefaultScale   = 2.0
	DefaultQuality = 90
	DefaultWait    = 500 * time.Millisecond
)

// JPEG quality bounds.
const (
	MinQuality = 0
	MaxQuality = 100
)

// Options holds render configuration shared by single and batch renders.
type Options struct {
	Width   int           // viewport width in pixels
	Scale   float64       // device scale factor (2 = 2x, 3 = 3x)
	Format  Format        // "png" or "jpeg"
	Quality int           // JPEG quality 0-100, ignored for PNG
	Wait    time.Duration // extra settle wait after readiness signals
}

// DefaultOptions returns options with default values.
func DefaultOptions() Options {
	return Options{
		Width:   DefaultWidth,
		Scale:   DefaultScale,
		Format:  FormatPNG,
		Quality: DefaultQuality,
		Wait:    DefaultWait,
	}
}

// Validate checks option bounds. Quality is validated only when the format
// is JPEG: a PNG request carries quality as dead weight and is never
// rejected for it.
func (o Options) Validate() error {
	if !o.Format.Valid() {
		return fmt.Errorf("%w: %q (must be png or jpeg)", ErrUnsupportedFormat, string(o.Format))
	}
	if o.Width <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidWidth, o.Width)
	}
	if o.Scale <= 0 {
		return fmt.Errorf("%w: %g (must be positive)", ErrInvalidScale, o.Scale)
	}
	if o.Format == FormatJPEG && (o.Quality < MinQuality || o.Quality > MaxQuality) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidQuality, o.Quality, MinQuality, MaxQuality)
	}
	if o.Wait < 0 {
		return fmt.Errorf("%w: %s (must not be negative)", ErrInvalidWait, o.Wait)
	}
	return nil
}

// RenderRequest is the immutable configuration for one render.
type RenderRequest struct {
	InputPath  string // HTML document to render
	OutputPath string // image file to write
	Options
}

// Validate checks the request's options. Input existence is checked at
// render time, not here.
func (r RenderRequest) Validate() error {
	return r.Options.Validate()
}

// RenderResult describes a successfully written image. It is produced only
// after the output file has been durably written.
type RenderResult struct {
	OutputPath string  // resolved output path
	Width      int     // output pixel width (viewport width x scale)
	Height     int     // output pixel height (content height x scale)
	SizeMB     float64 // output file size in megabytes
}

// Option configures a Renderer.
type Option func(*Renderer)

// defaultTimeout bounds document load; no other pipeline step has a timeout.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2img: WithTimeout duration must be positive")
	}
	return func(r *Renderer) { r.timeout = d }
}

// WithPostLoadHook replaces the hook run after the readiness waits and
// before layout measurement.
// Panics if h is nil; use NopHook to disable the default.
func WithPostLoadHook(h PostLoadHook) Option {
	if h == nil {
		panic("html2img: nil PostLoadHook")
	}
	return func(r *Renderer) { r.hook = h }
}
