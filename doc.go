// Package html2img converts static HTML documents into high-fidelity raster
// images using headless Chrome.
//
// # Quick Start
//
// Create a renderer and render a document:
//
//	renderer := html2img.NewRenderer()
//
//	result, err := renderer.Render(ctx, html2img.RenderRequest{
//	    InputPath:  "report.html",
//	    OutputPath: "report.png",
//	    Options:    html2img.DefaultOptions(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%dx%d px, %.2f MB\n", result.Width, result.Height, result.SizeMB)
//
// # Rendering Pipeline
//
// Each render opens an isolated browser session and drives a strict
// sequence that guarantees the capture matches the document's true rendered
// content:
//
//  1. Load the document (bounded by the load timeout)
//  2. Wait for declared fonts to finish loading
//  3. Wait for every embedded image to load or error
//  4. Run the post-load hook (icon re-render by default)
//  5. Apply the configured extra settle wait
//  6. Measure true content height from the layout metrics
//  7. Resize the viewport to the measured height and capture
//
// The session is closed on every exit path; it is never reused across
// documents.
//
// # High-DPI Output
//
// Options.Scale sets the device scale factor: 2 doubles the output pixel
// density, 3 triples it. Output dimensions are viewport width and measured
// content height multiplied by the scale. Chromium is launched with font
// hinting and subpixel positioning disabled so text renders identically
// across hosts.
//
// # Batch Rendering
//
// RenderDir renders every .html/.htm file directly inside a directory,
// isolating per-document failures and reporting progress through a
// ProgressSink:
//
//	results, err := renderer.RenderDir(ctx, "./pages", "./images",
//	    html2img.DefaultOptions(), sink)
//
// Documents are rendered strictly one at a time, each with its own browser
// session.
//
// # Browser Requirements
//
// Rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package html2img
