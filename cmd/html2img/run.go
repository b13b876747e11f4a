package main

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidExtension = errors.New("input must have .html or .htm extension")
)

// run dispatches to a subcommand. args is os.Args including the program name.
func run(args []string, env *Environment) error {
	if len(args) < 2 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[1] {
	case "render":
		return runRender(context.Background(), args[2:], env)
	case "batch":
		return runBatch(context.Background(), args[2:], env)
	case "version", "--version", "-V":
		fmt.Fprintf(env.Stdout, "html2img %s\n", Version)
		return nil
	case "help", "--help", "-h":
		printUsage(env.Stdout)
		return nil
	default:
		return fmt.Errorf("%w: %q (expected render or batch)", ErrUnknownCommand, args[1])
	}
}
