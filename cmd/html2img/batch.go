package main

import (
	"context"
	"fmt"

	html2img "github.com/alnah/go-html2img"
)

// runBatch renders every HTML file directly inside a directory.
func runBatch(ctx context.Context, args []string, env *Environment) error {
	f := &renderFlags{}
	fs := newRenderFlagSet("batch", f)
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

	dir := cfg.Input.DefaultDir
	if len(fs.Args()) > 0 {
		dir = fs.Args()[0]
	}
	if dir == "" {
		return ErrNoInput
	}

	outputDir := f.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	if f.verbose {
		printOptions(env.Stdout, opts)
	}

	renderer := html2img.NewRenderer()
	sink := newConsoleSink(env, f.quiet)

	results, err := renderer.RenderDir(ctx, dir, outputDir, opts, sink)
	if err != nil {
		return err
	}

	if !f.quiet {
		if len(results) == 0 && sink.failed == 0 {
			fmt.Fprintln(env.Stdout, "no HTML files found")
		} else {
			fmt.Fprintf(env.Stdout, "%d file(s) rendered\n", len(results))
		}
	}
	if sink.failed > 0 {
		return fmt.Errorf("%d render(s) failed", sink.failed)
	}
	return nil
}
