// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrOutputName = errors.New("cannot derive output name")
	ErrCreate     = errors.New("cannot create output file")
	ErrWrite      = errors.New("cannot write output file")
)

const (
	markdownExt = ".md"
	htmlExt     = ".html"
)

// HTMLOutputPath derives the output path for a markdown input by replacing a
// trailing ".md" with ".html". The input name must have at least one character
// before the extension; anything else is rejected rather than truncated.
//
// Examples:
//   - "notes.md" -> "notes.html"
//   - "docs/a.md" -> "docs/a.html"
//   - ".md" -> ErrOutputName
//   - "notes.txt" -> ErrOutputName
func HTMLOutputPath(input string) (string, error) {
	if len(input) <= len(markdownExt) || !strings.HasSuffix(input, markdownExt) {
		return "", fmt.Errorf("%w: %q does not end in %s", ErrOutputName, input, markdownExt)
	}
	return input[:len(input)-len(markdownExt)] + htmlExt, nil
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, so readers never see a partial file. On failure the temporary
// file is removed and any existing file at path is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreate, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "work" -> false (name)
//   - "./mirage.yaml" -> true (relative path)
//   - "/etc/mirage/site.yaml" -> true (absolute)
//   - "C:\config\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
