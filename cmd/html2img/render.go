package main

import (
	"context"
	"fmt"
	"io"
	"time"

	html2img "github.com/alnah/go-html2img"
	"github.com/alnah/go-html2img/internal/fileutil"
)

// runRender renders a single HTML file to an image.
func runRender(ctx context.Context, args []string, env *Environment) error {
	f := &renderFlags{}
	fs := newRenderFlagSet("render", f)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigFor(f)
	if err != nil {
		return err
	}

	opts, err := buildOptions(f, cfg)
	if err != nil {
		return err
	}

	if len(fs.Args()) == 0 {
		return ErrNoInput
	}
	input := fs.Args()[0]
	if !fileutil.IsHTMLDocument(input) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, input)
	}

	output := f.output
	if output == "" {
		output = fileutil.ReplaceExt(input, opts.Format.Ext())
	}

	if f.verbose {
		printOptions(env.Stdout, opts)
	}

	renderer := html2img.NewRenderer()
	start := env.Now()
	result, err := renderer.Render(ctx, html2img.RenderRequest{
		InputPath:  input,
		OutputPath: output,
		Options:    opts,
	})
	if err != nil {
		return err
	}

	if !f.quiet {
		printResult(env.Stdout, result, env.Now().Sub(start))
	}
	return nil
}

// printResult writes the single-render summary.
func printResult(w io.Writer, r *html2img.RenderResult, elapsed time.Duration) {
	fmt.Fprintf(w, "%s %s\n", successMark(), r.OutputPath)
	fmt.Fprintf(w, "  size: %dx%d px\n", r.Width, r.Height)
	fmt.Fprintf(w, "  file: %.2f MB\n", r.SizeMB)
	fmt.Fprintf(w, "  time: %s\n", elapsed.Round(time.Millisecond))
}
