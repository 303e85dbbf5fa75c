package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mirage "github.com/alnah/go-mirage"
	"github.com/alnah/go-mirage/internal/assets"
	"github.com/alnah/go-mirage/internal/fileutil"
	"github.com/alnah/go-mirage/internal/lineio"
	"github.com/alnah/go-mirage/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigRead      = errors.New("cannot read config file")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxNameLength        = 100
	MaxVersionLength     = 50
	MaxAuthorLength      = 100
	MaxURLLength         = 2048
	MaxDescriptionLength = 500
	MaxTitleLength       = 200
	MaxLangLength        = 35 // BCP 47 tags in practice
	MaxStyleLength       = 64
	MaxPathLength        = 4096
)

// appDirName is the directory searched under the user config dir.
const appDirName = "mirage"

// Config holds all configuration for a conversion run.
type Config struct {
	Banner  BannerConfig  `yaml:"banner"`
	Convert ConvertConfig `yaml:"convert"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
}

// BannerConfig is the program metadata printed by the usage banner and
// written into standalone documents as the generator.
type BannerConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"` // empty = build version
	Author      string `yaml:"author"`
	Homepage    string `yaml:"homepage"`
	Description string `yaml:"description"`
}

// ConvertConfig defines conversion options.
type ConvertConfig struct {
	Paragraphs string `yaml:"paragraphs"` // "line" or "merge"
	Standalone bool   `yaml:"standalone"` // wrap fragments in an HTML5 document
	Title      string `yaml:"title"`      // standalone title, empty = first heading, then file name
	Lang       string `yaml:"lang"`       // standalone <html lang>
	Style      string `yaml:"style"`      // embedded style for standalone output, empty = none
}

// InputConfig defines how input files are decoded.
type InputConfig struct {
	Encoding string `yaml:"encoding"`
}

// OutputConfig defines where derived output files go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = next to the input file
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Banner: BannerConfig{
			Name:        "Mirage",
			Author:      "Anirudh Rowjee",
			Description: "a tiny markdown compiler",
		},
		Convert: ConvertConfig{
			Paragraphs: mirage.ParagraphPerLine.String(),
			Lang:       "en",
			Style:      assets.DefaultStyle,
		},
		Input: InputConfig{
			Encoding: lineio.EncodingUTF8,
		},
	}
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig, and by the CLI after flags and environment are merged.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"banner.name", c.Banner.Name, MaxNameLength},
		{"banner.version", c.Banner.Version, MaxVersionLength},
		{"banner.author", c.Banner.Author, MaxAuthorLength},
		{"banner.homepage", c.Banner.Homepage, MaxURLLength},
		{"banner.description", c.Banner.Description, MaxDescriptionLength},
		{"convert.title", c.Convert.Title, MaxTitleLength},
		{"convert.lang", c.Convert.Lang, MaxLangLength},
		{"convert.style", c.Convert.Style, MaxStyleLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := mirage.ParseParagraphMode(c.Convert.Paragraphs); err != nil {
		return fmt.Errorf("%w: convert.paragraphs: %w", ErrInvalidValue, err)
	}

	if _, err := lineio.LookupEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("%w: input.encoding: %w", ErrInvalidValue, err)
	}

	if c.Convert.Lang != "" && strings.ContainsAny(c.Convert.Lang, " \t\"<>") {
		return fmt.Errorf("%w: convert.lang: %q", ErrInvalidValue, c.Convert.Lang)
	}

	return nil
}

// ParagraphMode returns the parsed paragraph mode. Call after Validate.
func (c *Config) ParagraphMode() mirage.ParagraphMode {
	mode, err := mirage.ParseParagraphMode(c.Convert.Paragraphs)
	if err != nil {
		return mirage.ParagraphPerLine
	}
	return mode
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; anything else is a name
// searched as <name>.yaml or <name>.yml in the working directory, then in the
// user config directory. Keys missing from the file keep their defaults; an
// empty or comment-only file yields DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigRead, configPath, err)
	}

	cfg := DefaultConfig()
	empty, err := yamlutil.IsEmptyDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	if !empty {
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate paths for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
