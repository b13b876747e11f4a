package html2img

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// batchOpener hands out a fresh mock session per document.
type batchOpener struct {
	failPathSub string
	opened      int
}

func (o *batchOpener) Open(ctx context.Context, width int, scale float64) (renderSession, error) {
	o.opened++
	return &mockSession{
		height:      100,
		img:         []byte("img"),
		failPathSub: o.failPathSub,
	}, nil
}

// recordSink records progress events for assertions.
type recordSink struct {
	total    int
	started  []string
	finished []string
	failures []string
}

func (s *recordSink) BatchStarted(total int) { s.total = total }

func (s *recordSink) DocumentStarted(name string, index, total int) {
	s.started = append(s.started, name)
}

func (s *recordSink) DocumentFinished(name string, result *RenderResult, err error) {
	s.finished = append(s.finished, name)
	if err != nil {
		s.failures = append(s.failures, name)
	}
}

func newBatchRenderer(opener sessionOpener) *Renderer {
	r := newTestRenderer(opener)
	return r
}

func batchOptions() Options {
	opts := DefaultOptions()
	opts.Wait = 0
	return opts
}

func TestRenderDir_Discovery(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "a.html")
	writeTestDoc(t, dir, "b.htm")
	writeTestDoc(t, dir, "c.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o750); err != nil {
		t.Fatal(err)
	}
	writeTestDoc(t, filepath.Join(dir, "sub"), "d.html")

	outDir := filepath.Join(dir, "out")
	sink := &recordSink{}
	r := newBatchRenderer(&batchOpener{})

	results, err := r.RenderDir(context.Background(), dir, outDir, batchOptions(), sink)
	if err != nil {
		t.Fatalf("RenderDir() = %v, want nil", err)
	}

	// c.txt excluded by discovery, sub/ not recursed.
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if sink.total != 2 {
		t.Errorf("BatchStarted total = %d, want 2", sink.total)
	}
	if got := filepath.Base(results[0].OutputPath); got != "a.png" {
		t.Errorf("results[0] = %q, want a.png", got)
	}
	if got := filepath.Base(results[1].OutputPath); got != "b.png" {
		t.Errorf("results[1] = %q, want b.png", got)
	}
	for _, r := range results {
		if _, err := os.Stat(r.OutputPath); err != nil {
			t.Errorf("output %s not written: %v", r.OutputPath, err)
		}
	}
}

func TestRenderDir_CaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "upper.HTML")
	writeTestDoc(t, dir, "mixed.Htm")

	r := newBatchRenderer(&batchOpener{})

	results, err := r.RenderDir(context.Background(), dir, "", batchOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
}

func TestRenderDir_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "notes.txt")

	sink := &recordSink{}
	r := newBatchRenderer(&batchOpener{})

	results, err := r.RenderDir(context.Background(), dir, "", batchOptions(), sink)
	if err != nil {
		t.Fatalf("RenderDir() = %v, want nil for empty discovery", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
	if len(sink.failures) != 0 {
		t.Errorf("failures = %v, want none", sink.failures)
	}
}

func TestRenderDir_MissingDirectory(t *testing.T) {
	r := newBatchRenderer(&batchOpener{})

	_, err := r.RenderDir(context.Background(), filepath.Join(t.TempDir(), "missing"), "", batchOptions(), nil)
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("RenderDir() = %v, want ErrDirectoryNotFound", err)
	}
}

func TestRenderDir_SourceIsFile(t *testing.T) {
	dir := t.TempDir()
	file := writeTestDoc(t, dir, "page.html")

	r := newBatchRenderer(&batchOpener{})

	_, err := r.RenderDir(context.Background(), file, "", batchOptions(), nil)
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("RenderDir() = %v, want ErrDirectoryNotFound", err)
	}
}

func TestRenderDir_InvalidOptionsRejectedEagerly(t *testing.T) {
	opts := batchOptions()
	opts.Format = "webp"

	r := newBatchRenderer(&batchOpener{})

	// Format membership is checked before the directory is touched.
	_, err := r.RenderDir(context.Background(), filepath.Join(t.TempDir(), "missing"), "", opts, nil)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("RenderDir() = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRenderDir_FailureIsolation(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "a.html")
	writeTestDoc(t, dir, "b.html")
	writeTestDoc(t, dir, "c.html")

	sink := &recordSink{}
	opener := &batchOpener{failPathSub: "b.html"}
	r := newBatchRenderer(opener)

	results, err := r.RenderDir(context.Background(), dir, "", batchOptions(), sink)
	if err != nil {
		t.Fatalf("RenderDir() = %v, want nil (per-item failures never abort)", err)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 successes", len(results))
	}
	if len(sink.failures) != 1 || sink.failures[0] != "b.html" {
		t.Errorf("failures = %v, want [b.html]", sink.failures)
	}
	// Progress advanced exactly once per document.
	if len(sink.finished) != 3 {
		t.Errorf("finished events = %d, want 3", len(sink.finished))
	}
	// A fresh session per document, even for the failed one.
	if opener.opened != 3 {
		t.Errorf("sessions opened = %d, want 3", opener.opened)
	}
}

func TestRenderDir_CreatesOutputDirEvenWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "nested", "out")

	r := newBatchRenderer(&batchOpener{})

	if _, err := r.RenderDir(context.Background(), dir, outDir, batchOptions(), nil); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(outDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("output directory not created: %v", err)
	}
}

func TestRenderDir_DefaultOutputDirIsSource(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "page.html")

	r := newBatchRenderer(&batchOpener{})

	results, err := r.RenderDir(context.Background(), dir, "", batchOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if got := filepath.Dir(results[0].OutputPath); got != dir {
		t.Errorf("output dir = %q, want source dir %q", got, dir)
	}
}

func TestRenderDir_FormatDrivesOutputExtension(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "page.html")

	opts := batchOptions()
	opts.Format = FormatJPEG
	opts.Quality = 80

	r := newBatchRenderer(&batchOpener{})

	results, err := r.RenderDir(context.Background(), dir, "", opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := filepath.Base(results[0].OutputPath); got != "page.jpeg" {
		t.Errorf("output = %q, want page.jpeg", got)
	}
}

func TestRenderDir_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "a.html")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newBatchRenderer(&batchOpener{})

	_, err := r.RenderDir(ctx, dir, "", batchOptions(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RenderDir() = %v, want context.Canceled", err)
	}
}
