package html2img

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// renderSession is one isolated browser page driving a single document
// capture. Exactly one session is live at a time; it is created at the
// start of a render and destroyed at its end, never reused across
// documents.
type renderSession interface {
	Load(ctx context.Context, inputPath string) error
	Eval(ctx context.Context, script string) error
	EvalInt(ctx context.Context, script string) (int, error)
	SetViewport(width, height int) error
	Capture(format Format, quality int) ([]byte, error)
	Close() error
}

// sessionOpener opens isolated rendering sessions.
type sessionOpener interface {
	Open(ctx context.Context, width int, scale float64) (renderSession, error)
}

// Compile-time interface checks
var (
	_ sessionOpener = (*rodOpener)(nil)
	_ renderSession = (*rodSession)(nil)
)

// Readiness scripts evaluated against the loaded document.
const (
	// Resolves once all declared fonts have finished loading or failed.
	// Unloaded fonts change text metrics and box heights, so this must
	// complete before measuring layout.
	fontsReadyScript = `() => document.fonts.ready`

	// Each image is awaited independently; the step settles only when every
	// image has loaded or errored.
	imagesSettledScript = `() => {
	const images = Array.from(document.images);
	return Promise.all(images.map(img => {
		if (img.complete) return Promise.resolve();
		return new Promise((resolve) => {
			img.addEventListener('load', resolve);
			img.addEventListener('error', resolve);
		});
	}));
}`

	// Height sources disagree across browser quirks modes; the maximum is
	// the conservative choice that avoids clipping content.
	contentHeightScript = `() => {
	return Math.max(
		document.body.scrollHeight,
		document.body.offsetHeight,
		document.documentElement.clientHeight,
		document.documentElement.scrollHeight,
		document.documentElement.offsetHeight
	);
}`
)

// reflowSettleDelay absorbs reflow triggered by the viewport resize.
const reflowSettleDelay = 200 * time.Millisecond

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Renderer renders static HTML documents to raster images using headless
// Chrome. Create with NewRenderer. A Renderer is safe to reuse sequentially:
// every render opens and closes its own browser session.
type Renderer struct {
	timeout time.Duration
	hook    PostLoadHook
	opener  sessionOpener
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithPostLoadHook).
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		timeout: defaultTimeout,
		hook:    DefaultPostLoadHook,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.opener == nil {
		r.opener = &rodOpener{timeout: r.timeout}
	}
	return r
}

// Render renders one HTML document to an image file, creating parent
// directories of the output path as needed.
//
// Preconditions are checked before any session is opened: the format must
// be supported (ErrUnsupportedFormat) and the input must exist
// (ErrInputNotFound). Failures inside the session protocol are wrapped in
// ErrRenderFailed carrying the underlying cause; the session is closed on
// every exit path.
func (r *Renderer) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inputPath, err := filepath.Abs(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, req.InputPath)
	}
	if info, statErr := os.Stat(inputPath); statErr != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, req.InputPath)
	}

	outputPath, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteImage, err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteImage, err)
	}

	session, err := r.opener.Open(ctx, req.Width, req.Scale)
	if err != nil {
		return nil, err
	}
	defer func() { _ = session.Close() }()

	height, err := r.capture(ctx, session, inputPath, outputPath, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, filepath.Base(inputPath), err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteImage, err)
	}

	return &RenderResult{
		OutputPath: outputPath,
		Width:      int(float64(req.Width) * req.Scale),
		Height:     int(float64(height) * req.Scale),
		SizeMB:     float64(info.Size()) / 1024 / 1024,
	}, nil
}

// capture drives the readiness/measurement/capture protocol and returns the
// measured content height in CSS pixels. Each step is a precondition for
// the next; the order is load-bearing.
func (r *Renderer) capture(ctx context.Context, session renderSession, inputPath, outputPath string, req RenderRequest) (int, error) {
	if err := session.Load(ctx, inputPath); err != nil {
		return 0, err
	}

	if err := session.Eval(ctx, fontsReadyScript); err != nil {
		return 0, err
	}
	if err := session.Eval(ctx, imagesSettledScript); err != nil {
		return 0, err
	}
	if err := session.Eval(ctx, r.hook.Script()); err != nil {
		return 0, err
	}

	// Extra settle wait absorbs layout-affecting script effects not covered
	// by the readiness signals (CSS transitions, deferred scripts).
	if err := sleep(ctx, req.Wait); err != nil {
		return 0, err
	}

	height, err := session.EvalInt(ctx, contentHeightScript)
	if err != nil {
		return 0, err
	}

	// Explicit resize-then-capture: the engine's own full-page heuristic can
	// mis-measure documents with absolutely-positioned or overflowing
	// content.
	if err := session.SetViewport(req.Width, height); err != nil {
		return 0, err
	}
	if err := sleep(ctx, reflowSettleDelay); err != nil {
		return 0, err
	}

	img, err := session.Capture(req.Format, req.Quality)
	if err != nil {
		return 0, err
	}

	// #nosec G306 -- image output files are intended to be readable
	if err := os.WriteFile(outputPath, img, filePermissions); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteImage, err)
	}

	return height, nil
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
