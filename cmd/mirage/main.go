package main

import (
	"context"
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code. It is the single
// place where errors are reported to the user.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	var hc hintContext
	err := run(ctx, args, env, &hc)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, hc))
	return exitCodeFor(err)
}
