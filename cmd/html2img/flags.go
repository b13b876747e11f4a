package main

import (
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	html2img "github.com/alnah/go-html2img"
	"github.com/alnah/go-html2img/internal/config"
)

// renderFlags holds the flags shared by the render and batch commands.
// Sentinel zero values (0, -1, "") mean "not set on the command line" so
// config-file values and library defaults can fill in underneath.
type renderFlags struct {
	config  string
	output  string
	width   int
	scale   float64
	format  string
	quality int
	waitMS  int
	quiet   bool
	verbose bool
}

// newRenderFlagSet builds the flag set shared by render and batch.
func newRenderFlagSet(name string, f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output path (render) or directory (batch)")
	fs.IntVarP(&f.width, "width", "w", 0, "viewport width in pixels")
	fs.Float64VarP(&f.scale, "scale", "s", 0, "device scale factor (2 = 2x, 3 = 3x)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: png or jpeg")
	fs.IntVarP(&f.quality, "quality", "q", -1, "JPEG quality (0-100)")
	fs.IntVar(&f.waitMS, "wait", -1, "extra settle wait in milliseconds")
	fs.BoolVar(&f.quiet, "quiet", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
	return fs
}

// loadConfigFor loads the config file named by the flag, or a neutral
// default when no config is requested.
func loadConfigFor(f *renderFlags) (*config.Config, error) {
	if f.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(f.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildOptions merges flag values over config values over library defaults,
// then validates the merged result. CLI wins over config, config over
// defaults.
func buildOptions(f *renderFlags, cfg *config.Config) (html2img.Options, error) {
	opts := html2img.DefaultOptions()

	if cfg.Render.Width > 0 {
		opts.Width = cfg.Render.Width
	}
	if cfg.Render.Scale > 0 {
		opts.Scale = cfg.Render.Scale
	}
	if cfg.Render.Format != "" {
		opts.Format = html2img.Format(strings.ToLower(cfg.Render.Format))
	}
	if cfg.Render.Quality > 0 {
		opts.Quality = cfg.Render.Quality
	}
	if cfg.Render.WaitMS > 0 {
		opts.Wait = time.Duration(cfg.Render.WaitMS) * time.Millisecond
	}

	if f.width > 0 {
		opts.Width = f.width
	}
	if f.scale > 0 {
		opts.Scale = f.scale
	}
	if f.format != "" {
		opts.Format = html2img.Format(strings.ToLower(f.format))
	}
	if f.quality >= 0 {
		opts.Quality = f.quality
	}
	if f.waitMS >= 0 {
		opts.Wait = time.Duration(f.waitMS) * time.Millisecond
	}

	if err := opts.Validate(); err != nil {
		return html2img.Options{}, err
	}
	return opts, nil
}
