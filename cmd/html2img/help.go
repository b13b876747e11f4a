package main

import (
	"fmt"
	"io"
	"strings"

	html2img "github.com/alnah/go-html2img"
)

const usageText = `html2img renders static HTML documents to high-fidelity raster images.

Usage:
  html2img render <file.html> [flags]    render a single document
  html2img batch <directory> [flags]     render every .html/.htm in a directory
  html2img version                       print version
  html2img help                          print this help

Flags:
  -o, --output string    output path (render) or directory (batch)
  -w, --width int        viewport width in pixels (default 1200)
  -s, --scale float      device scale factor, 2 = 2x, 3 = 3x (default 2)
  -f, --format string    output format: png or jpeg (default png)
  -q, --quality int      JPEG quality 0-100 (default 90)
      --wait int         extra settle wait in milliseconds (default 500)
  -c, --config string    config file name or path
      --quiet            only show errors
  -v, --verbose          show detailed output

Examples:
  html2img render page.html
  html2img render page.html -o hero.png --scale 3
  html2img render page.html -f jpeg -q 95
  html2img batch ./reports -o ./images
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// printOptions writes the effective render configuration.
func printOptions(w io.Writer, opts html2img.Options) {
	fmt.Fprintf(w, "width:   %dpx\n", opts.Width)
	fmt.Fprintf(w, "scale:   %gx -> %dpx output\n", opts.Scale, int(float64(opts.Width)*opts.Scale))
	fmt.Fprintf(w, "format:  %s\n", strings.ToUpper(string(opts.Format)))
	if opts.Format == html2img.FormatJPEG {
		fmt.Fprintf(w, "quality: %d\n", opts.Quality)
	}
	fmt.Fprintf(w, "wait:    %s\n", opts.Wait)
}
