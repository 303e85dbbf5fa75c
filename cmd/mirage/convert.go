package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	mirage "github.com/alnah/go-mirage"
	"github.com/alnah/go-mirage/internal/assets"
	"github.com/alnah/go-mirage/internal/config"
	"github.com/alnah/go-mirage/internal/fileutil"
	"github.com/alnah/go-mirage/internal/hints"
	"github.com/alnah/go-mirage/internal/lineio"
	"github.com/alnah/go-mirage/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("usage error")
	ErrInputOpen    = errors.New("cannot open input file")
	ErrOutputCreate = errors.New("cannot create output file")
	ErrOutputWrite  = errors.New("cannot write output file")
	ErrOutputInput  = errors.New("output path is the input file")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// conversion is one input file bound to its output path and settings.
type conversion struct {
	input      string
	output     string
	configPath string
	cfg        *config.Config
	loader     assets.AssetLoader // nil means the embedded assets
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	lines     int
	fragments int
	duration  time.Duration
}

// hintContext carries what hintFor needs beyond the error itself.
type hintContext struct {
	input      string
	configName string
}

// run parses args, resolves configuration and converts the single input file.
func run(ctx context.Context, args []string, env *Environment, hc *hintContext) error {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	base := env.Config
	if base == nil {
		base = config.DefaultConfig()
	}

	if !flags.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	envCfg := loadEnvConfig()
	hc.configName = flags.config
	if hc.configName == "" {
		hc.configName = envCfg.ConfigPath
	}

	cfg, configPath, err := resolveConfig(flags, envCfg, base)
	if err != nil {
		// help and version stay usable with a broken config
		if !flags.help && !flags.version {
			return err
		}
		cfg = base
	}

	switch {
	case flags.help:
		printBanner(env.Stdout, cfg.Banner)
		printUsage(env.Stdout)
		return nil
	case flags.version:
		fmt.Fprintf(env.Stdout, "%s %s\n", cfg.Banner.Name, bannerVersion(cfg.Banner))
		return nil
	case flags.printConfig:
		data, err := yamlutil.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	if len(positional) != 1 {
		printBanner(env.Stderr, cfg.Banner)
		printUsage(env.Stderr)
		return fmt.Errorf("%w: expected exactly one input file, got %d", ErrUsage, len(positional))
	}

	input := positional[0]
	hc.input = input

	output, err := resolveOutputPath(input, flags.output, cfg.Output.Dir)
	if err != nil {
		return err
	}

	job := &conversion{
		input:      input,
		output:     output,
		configPath: configPath,
		cfg:        cfg,
		loader:     env.AssetLoader,
	}

	if flags.verbose && configPath != "" {
		fmt.Fprintf(env.Stderr, "config: %s\n", configPath)
	}

	if flags.watch {
		return watchFile(ctx, job, flags, env)
	}
	return convertAndReport(ctx, job, flags, env)
}

// resolveConfig builds the effective configuration.
// Precedence: CLI flags > MIRAGE_* env > config file > base.
func resolveConfig(flags *cliFlags, envCfg *envConfig, base *config.Config) (*config.Config, string, error) {
	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	var configPath string
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, "", fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		configPath = name
	} else {
		copied := *base
		cfg = &copied
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, configPath, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.paragraphs != "" {
		cfg.Convert.Paragraphs = flags.paragraphs
	}
	if flags.encoding != "" {
		cfg.Input.Encoding = flags.encoding
	}
	if flags.title != "" {
		cfg.Convert.Title = flags.title
	}
	if flags.standaloneSet {
		cfg.Convert.Standalone = flags.standalone
	}
}

// resolveOutputPath returns the explicit --output path, or derives one from
// the input name and relocates it into outputDir when set.
// An explicit path naming the input file is rejected.
func resolveOutputPath(input, flagOutput, outputDir string) (string, error) {
	if flagOutput != "" {
		if filepath.Clean(flagOutput) == filepath.Clean(input) {
			return "", fmt.Errorf("%w: %s", ErrOutputInput, flagOutput)
		}
		return flagOutput, nil
	}

	output, err := fileutil.HTMLOutputPath(input)
	if err != nil {
		return "", err
	}
	if outputDir != "" {
		output = filepath.Join(outputDir, filepath.Base(output))
	}
	return output, nil
}

// convertAndReport converts job once and prints the result.
func convertAndReport(ctx context.Context, job *conversion, flags *cliFlags, env *Environment) error {
	start := env.Now()
	res, err := convertFile(ctx, job)
	if err != nil {
		return err
	}
	res.duration = env.Now().Sub(start)

	if flags.quiet {
		return nil
	}
	if flags.verbose {
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", job.input, job.output, res.duration.Round(time.Millisecond))
		fmt.Fprintf(env.Stderr, "%d lines, %d fragments, paragraphs=%s\n", res.lines, res.fragments, job.cfg.ParagraphMode())
		return nil
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", job.output)
	return nil
}

// convertFile reads, converts and writes one file. The output is replaced
// atomically; a failed run leaves any previous output untouched.
func convertFile(ctx context.Context, job *conversion) (*conversionResult, error) {
	lines, err := readInputLines(job.input, job.cfg.Input.Encoding)
	if err != nil {
		return nil, err
	}

	conv := mirage.New(mirage.WithParagraphMode(job.cfg.ParagraphMode()))
	fragments := conv.Convert(lines)

	var out string
	if job.cfg.Convert.Standalone {
		out, err = buildDocument(job, lines, fragments)
		if err != nil {
			return nil, err
		}
	} else {
		out = strings.Join(fragments, "")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(job.output, []byte(out), filePermissions); err != nil {
		if errors.Is(err, fileutil.ErrCreate) {
			return nil, fmt.Errorf("%w: %s: %w", ErrOutputCreate, job.output, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrOutputWrite, job.output, err)
	}

	return &conversionResult{lines: len(lines), fragments: len(fragments)}, nil
}

// readInputLines opens path and decodes it into lines.
func readInputLines(path, encoding string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputOpen, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := lineio.ReadLines(f, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// buildDocument wraps fragments in a standalone HTML5 page.
// Title: configured title, then the first heading, then the input base name.
func buildDocument(job *conversion, lines, fragments []string) (string, error) {
	cfg := job.cfg

	loadStyle := assets.LoadStyle
	if job.loader != nil {
		loadStyle = job.loader.LoadStyle
	}

	var css string
	if cfg.Convert.Style != "" {
		var err error
		css, err = loadStyle(cfg.Convert.Style)
		if err != nil {
			return "", fmt.Errorf("loading style: %w", err)
		}
	}

	title := cfg.Convert.Title
	if title == "" {
		title = mirage.FirstHeading(lines)
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(job.input), filepath.Ext(job.input))
	}

	return mirage.RenderDocument(mirage.Document{
		Title:     title,
		Lang:      cfg.Convert.Lang,
		Generator: strings.TrimSpace(cfg.Banner.Name + " " + bannerVersion(cfg.Banner)),
		CSS:       css,
		Body:      fragments,
	})
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, hc hintContext) string {
	switch {
	case errors.Is(err, ErrInputOpen) && errors.Is(err, os.ErrNotExist):
		return hints.ForInputNotFound(hc.input)
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(hc.configName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(hc.configName))
	case errors.Is(err, fileutil.ErrOutputName):
		return hints.ForOutputName()
	case errors.Is(err, ErrOutputInput):
		return hints.ForOutputIsInput()
	case errors.Is(err, ErrOutputCreate):
		return hints.ForOutputDirectory()
	case errors.Is(err, lineio.ErrLineDecode), errors.Is(err, lineio.ErrUnknownEncoding):
		return hints.ForLineDecode(lineio.Encodings())
	case errors.Is(err, mirage.ErrInvalidParagraphMode):
		return hints.ForParagraphMode(mirage.ParagraphModeNames())
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	}
	return ""
}
