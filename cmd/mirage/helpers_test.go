package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-mirage/internal/assets"
	"github.com/alnah/go-mirage/internal/config"
)

// fixedNow returns a clock that advances by step on every call.
func fixedNow(step time.Duration) func() time.Time {
	current := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

// newTestEnv returns an Environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:         fixedNow(5 * time.Millisecond),
		Stdout:      &stdout,
		Stderr:      &stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Config:      config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

// writeInput writes content to dir/name and returns the path.
func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// readOutput returns the content of path or fails the test.
func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(data)
}
