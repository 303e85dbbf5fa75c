package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// watchFile converts job once, then again after every change to the input
// file until ctx is canceled. The parent directory is watched rather than the
// file, so editors that save by renaming a new file into place keep working.
// Conversion failures are reported and watching continues.
func watchFile(ctx context.Context, job *conversion, flags *cliFlags, env *Environment) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(job.input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	convertOnce := func() {
		err := convertAndReport(ctx, job, flags, env)
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, hintContext{input: job.input}))
		}
	}

	convertOnce()
	if !flags.quiet {
		fmt.Fprintf(env.Stderr, "watching %s (Ctrl+C to stop)\n", job.input)
	}

	target := filepath.Clean(job.input)
	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounce.Reset(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "warning: watcher: %v\n", err)

		case <-debounce.C:
			convertOnce()
		}
	}
}
