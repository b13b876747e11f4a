package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	html2img "github.com/alnah/go-html2img"
)

// consoleSink displays batch progress on the terminal. All rendering logic
// stays on the other side of the ProgressSink interface.
type consoleSink struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
	bar    *progressbar.ProgressBar
	failed int
}

// Compile-time interface implementation check.
var _ html2img.ProgressSink = (*consoleSink)(nil)

func newConsoleSink(env *Environment, quiet bool) *consoleSink {
	return &consoleSink{out: env.Stdout, errOut: env.Stderr, quiet: quiet}
}

func (s *consoleSink) BatchStarted(total int) {
	if s.quiet || total == 0 {
		return
	}
	s.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(s.errOut),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

func (s *consoleSink) DocumentStarted(name string, index, total int) {
	if s.bar != nil {
		s.bar.Describe("rendering " + name)
	}
}

func (s *consoleSink) DocumentFinished(name string, result *html2img.RenderResult, err error) {
	switch {
	case err != nil:
		s.failed++
		fmt.Fprintf(s.errOut, "%s %s: %v\n", failureMark(), name, err)
	case !s.quiet:
		fmt.Fprintf(s.out, "%s %s (%dx%d, %.2f MB)\n",
			successMark(), name, result.Width, result.Height, result.SizeMB)
	}
	if s.bar != nil {
		// Progress advances exactly once per document, success or failure.
		_ = s.bar.Add(1)
	}
}

func successMark() string { return color.GreenString("✓") }
func failureMark() string { return color.RedString("✗") }
