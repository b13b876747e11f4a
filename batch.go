package html2img

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-html2img/internal/fileutil"
)

// ProgressSink consumes structured progress events from a batch render.
// Implementations display progress; no rendering logic lives behind it.
type ProgressSink interface {
	// BatchStarted fires once with the number of discovered documents.
	BatchStarted(total int)
	// DocumentStarted fires before each document's render begins.
	DocumentStarted(name string, index, total int)
	// DocumentFinished fires exactly once per document, success or failure.
	// On failure result is nil and err carries the cause; the batch
	// continues either way.
	DocumentFinished(name string, result *RenderResult, err error)
}

// nopSink discards all progress events.
type nopSink struct{}

func (nopSink) BatchStarted(int)                              {}
func (nopSink) DocumentStarted(string, int, int)              {}
func (nopSink) DocumentFinished(string, *RenderResult, error) {}

// RenderDir renders every HTML document directly inside dir (non-recursive)
// and returns the results of all documents that succeeded, in discovery
// order. Per-document failures are reported to the sink and never abort the
// batch; RenderDir itself fails only when dir is invalid, the output
// directory cannot be created, or the context is cancelled.
//
// An empty outputDir means images are written next to their inputs. The
// output directory is created before discovery, even when no documents are
// found. A nil sink disables reporting.
func (r *Renderer) RenderDir(ctx context.Context, dir, outputDir string, opts Options, sink ProgressSink) ([]RenderResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = nopSink{}
	}
	if outputDir == "" {
		outputDir = dir
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	docs, err := discoverDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering documents: %w", err)
	}

	sink.BatchStarted(len(docs))

	results := make([]RenderResult, 0, len(docs))
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := filepath.Base(doc)
		sink.DocumentStarted(name, i, len(docs))

		result, err := r.Render(ctx, RenderRequest{
			InputPath:  doc,
			OutputPath: filepath.Join(outputDir, fileutil.ReplaceExt(name, opts.Format.Ext())),
			Options:    opts,
		})
		if err != nil {
			sink.DocumentFinished(name, nil, err)
			continue
		}

		results = append(results, *result)
		sink.DocumentFinished(name, result, nil)
	}

	return results, nil
}

// discoverDocuments lists HTML documents directly inside dir. os.ReadDir
// returns entries sorted by filename, so discovery order is deterministic.
func discoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []string
	for _, e := range entries {
		if e.IsDir() || !fileutil.IsHTMLDocument(e.Name()) {
			continue
		}
		docs = append(docs, filepath.Join(dir, e.Name()))
	}
	return docs, nil
}
