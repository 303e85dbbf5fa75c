package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mirage/internal/config"
)

const envPrefix = "MIRAGE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MIRAGE_CONFIG: config file name or path
	Paragraphs string // MIRAGE_PARAGRAPHS: line, merge
	Encoding   string // MIRAGE_ENCODING: input encoding
	OutputDir  string // MIRAGE_OUTPUT_DIR: directory for derived output names
	Standalone *bool  // MIRAGE_STANDALONE: nil when unset or not a boolean
}

// knownEnvVars lists valid MIRAGE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MIRAGE_CONFIG":     true,
	"MIRAGE_PARAGRAPHS": true,
	"MIRAGE_ENCODING":   true,
	"MIRAGE_OUTPUT_DIR": true,
	"MIRAGE_STANDALONE": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MIRAGE_CONFIG"),
		Paragraphs: os.Getenv("MIRAGE_PARAGRAPHS"),
		Encoding:   os.Getenv("MIRAGE_ENCODING"),
		OutputDir:  os.Getenv("MIRAGE_OUTPUT_DIR"),
	}

	if v := os.Getenv("MIRAGE_STANDALONE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Standalone = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MIRAGE_* variables.
// Helps catch typos like MIRAGE_PARAGRAPH instead of MIRAGE_PARAGRAPHS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment values over the loaded config.
// Precedence is CLI flags > env vars > config file > defaults; CLI flags are
// applied afterwards by mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Paragraphs != "" {
		cfg.Convert.Paragraphs = env.Paragraphs
	}
	if env.Encoding != "" {
		cfg.Input.Encoding = env.Encoding
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Standalone != nil {
		cfg.Convert.Standalone = *env.Standalone
	}
}
