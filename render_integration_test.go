//go:build integration

package html2img

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// Integration tests drive a real headless Chrome via rod.
// Run with: go test -tags integration ./...

const minimalDoc = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body><p>one line of text</p></body>
</html>`

func writeIntegrationDoc(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(minimalDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIntegration_RenderScaledWidth(t *testing.T) {
	dir := t.TempDir()
	input := writeIntegrationDoc(t, dir, "line.html")
	output := filepath.Join(dir, "line.png")

	opts := DefaultOptions()
	opts.Wait = 0

	r := NewRenderer()
	result, err := r.Render(context.Background(), RenderRequest{
		InputPath:  input,
		OutputPath: output,
		Options:    opts,
	})
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}

	if result.Width != 2400 {
		t.Errorf("Width = %d, want 2400 (1200 x 2.0)", result.Width)
	}
	if result.Height <= 0 || result.Height%2 != 0 {
		t.Errorf("Height = %d, want positive even multiple of measured height", result.Height)
	}
	if info, err := os.Stat(output); err != nil || info.Size() == 0 {
		t.Errorf("output file missing or empty: %v", err)
	}
}

func TestIntegration_JPEGQualityOrdersFileSize(t *testing.T) {
	dir := t.TempDir()
	input := writeIntegrationDoc(t, dir, "line.html")

	render := func(quality int, name string) int64 {
		t.Helper()
		opts := DefaultOptions()
		opts.Format = FormatJPEG
		opts.Quality = quality
		opts.Wait = 0

		r := NewRenderer()
		result, err := r.Render(context.Background(), RenderRequest{
			InputPath:  input,
			OutputPath: filepath.Join(dir, name),
			Options:    opts,
		})
		if err != nil {
			t.Fatalf("Render(quality=%d) = %v", quality, err)
		}
		info, err := os.Stat(result.OutputPath)
		if err != nil {
			t.Fatal(err)
		}
		return info.Size()
	}

	low := render(50, "low.jpeg")
	high := render(95, "high.jpeg")

	if high < low {
		t.Errorf("quality 95 file (%d bytes) smaller than quality 50 file (%d bytes)", high, low)
	}
}

func TestIntegration_BatchMixedDirectory(t *testing.T) {
	dir := t.TempDir()
	writeIntegrationDoc(t, dir, "a.html")
	writeIntegrationDoc(t, dir, "b.htm")
	if err := os.WriteFile(filepath.Join(dir, "c.txt"), []byte("not html"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.Wait = 0

	r := NewRenderer()
	results, err := r.RenderDir(context.Background(), dir, filepath.Join(dir, "out"), opts, nil)
	if err != nil {
		t.Fatalf("RenderDir() = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 (c.txt excluded by discovery)", len(results))
	}
	for _, res := range results {
		if info, err := os.Stat(res.OutputPath); err != nil || info.Size() == 0 {
			t.Errorf("output %s missing or empty: %v", res.OutputPath, err)
		}
	}
}
