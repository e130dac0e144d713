package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses arguments, runs the generation, and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'uwptiles --help' for usage.")
		return ExitUsage
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "uwptiles %s\n", Version)
		return ExitSuccess
	}

	configureMaxProcs(env.Stderr, flags.common.verbose)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, flags, env); err != nil {
		if errors.Is(err, ErrNoIcon) {
			printUsage(env.Stdout)
			return ExitUsage
		}
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
