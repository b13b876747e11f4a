package html2img

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// defaultViewportHeight is the baseline viewport height used until content
// height has been measured.
const defaultViewportHeight = 800

// requestIdleWindow is the quiet period after which in-flight subresource
// fetches are considered settled.
const requestIdleWindow = 300 * time.Millisecond

// rodOpener opens rod-backed sessions. Each session launches its own
// browser process; rod downloads a managed Chromium on first run if no
// browser is found.
type rodOpener struct {
	timeout time.Duration
}

// Open launches a browser and creates a page with the requested viewport
// width and device scale factor. The launcher flags force a consistent,
// non-hinted font rasterization path so output pixels do not depend on the
// host's font-smoothing settings.
func (o *rodOpener) Open(ctx context.Context, width int, scale float64) (renderSession, error) {
	l := launcher.New().
		Set("font-render-hinting", "none").
		Set("disable-lcd-text").
		Set("disable-font-subpixel-positioning")

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	s := &rodSession{
		browser: browser,
		page:    page,
		scale:   scale,
		timeout: o.timeout,
	}
	if err := s.SetViewport(width, defaultViewportHeight); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	return s, nil
}

// rodSession implements renderSession using go-rod.
type rodSession struct {
	browser *rod.Browser
	page    *rod.Page
	scale   float64
	timeout time.Duration
}

// Load navigates to the document and waits for it to load. This is the only
// step with an explicit upper bound: it fails hard when subresource
// activity does not settle within the timeout.
func (s *rodSession) Load(ctx context.Context, inputPath string) error {
	page := s.page.Context(ctx).Timeout(s.timeout)
	if err := page.Navigate("file://" + inputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	// Settle in-flight subresource fetches before the readiness waits.
	page.WaitRequestIdle(requestIdleWindow, nil, nil, nil)()
	return nil
}

// Eval evaluates a script expression in the page, awaiting any returned
// promise. No timeout: a wait condition that never settles stalls the
// pipeline, which is the documented contract.
func (s *rodSession) Eval(ctx context.Context, script string) error {
	if _, err := s.page.Context(ctx).Eval(script); err != nil {
		return fmt.Errorf("%w: %v", ErrEvalScript, err)
	}
	return nil
}

// EvalInt evaluates a script expression and returns its integer result.
func (s *rodSession) EvalInt(ctx context.Context, script string) (int, error) {
	obj, err := s.page.Context(ctx).Eval(script)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEvalScript, err)
	}
	return obj.Value.Int(), nil
}

// SetViewport resizes the viewport, preserving the session's device scale
// factor.
func (s *rodSession) SetViewport(width, height int) error {
	return s.page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: s.scale,
		Mobile:            false,
	})
}

// Capture takes a full-page screenshot and returns the image bytes. The
// quality parameter is forwarded only for the lossy format.
func (s *rodSession) Capture(format Format, quality int) ([]byte, error) {
	req := &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	}
	if format == FormatJPEG {
		req.Format = proto.PageCaptureScreenshotFormatJpeg
		req.Quality = intPtr(quality)
	}

	img, err := s.page.Screenshot(true, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	return img, nil
}

// Close releases the page and browser. Safe to call on a partially opened
// session.
func (s *rodSession) Close() error {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	if s.browser != nil {
		err := s.browser.Close()
		s.browser = nil
		return err
	}
	return nil
}

// intPtr returns a pointer to an int value.
func intPtr(v int) *int {
	return &v
}
