package main

import (
	"io"
	"os"
	"time"
)

// Environment groups process-level collaborators so tests can substitute
// writers and the clock.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

func defaultEnvironment() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
	}
}
