package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	html2img "github.com/alnah/go-html2img"
	"github.com/alnah/go-html2img/internal/config"
	"github.com/alnah/go-html2img/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := defaultEnvironment()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := run(os.Args, env); err != nil {
		fmt.Fprintln(env.Stderr, errorWithHint(err))
		os.Exit(exitCodeFor(err))
	}
}

// errorWithHint appends an actionable hint for known failure classes.
func errorWithHint(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, html2img.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, html2img.ErrPageLoad):
		msg += hints.ForPageLoad()
	case errors.Is(err, html2img.ErrWriteImage):
		msg += hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound()
	}
	return msg
}
