// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// userConfigMarker identifies the per-user config location among search paths.
var userConfigMarker = string(filepath.Separator) + "mirage" + string(filepath.Separator)

// ForInputNotFound returns hints for an input file that cannot be opened.
func ForInputNotFound(path string) string {
	if filepath.Ext(path) == "" {
		return format("check the path; did you mean " + path + ".md?")
	}
	return format("check the path and file permissions")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputName returns hints when no output name can be derived from the input.
func ForOutputName() string {
	return format("input must end in .md, or pass --output")
}

// ForOutputIsInput returns hints when --output names the input file.
func ForOutputIsInput() string {
	return format("choose an --output path other than the input, or omit it to write a .html file")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForLineDecode returns hints for input that is not valid in the chosen encoding.
func ForLineDecode(encodings []string) string {
	if len(encodings) == 0 {
		return ""
	}
	return formatHints([]string{
		"pass --encoding to read non UTF-8 files",
		"available: " + strings.Join(encodings, ", "),
	})
}

// ForParagraphMode returns hints for an unknown paragraph mode.
func ForParagraphMode(modes []string) string {
	if len(modes) == 0 {
		return ""
	}
	return format("available: " + strings.Join(modes, ", "))
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + `; use style: "" for none`)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
