package main

// Notes:
// - resolveConfig reads MIRAGE_* through loadEnvConfig in run; here the
//   envConfig is built by hand so the tests stay parallel.
// - convertFile cancellation is tested with an already canceled context;
//   cancellation in the middle of a write is not observable.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mirage "github.com/alnah/go-mirage"
	"github.com/alnah/go-mirage/internal/assets"
	"github.com/alnah/go-mirage/internal/config"
	"github.com/alnah/go-mirage/internal/fileutil"
	"github.com/alnah/go-mirage/internal/lineio"
)

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path precedence
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		flagOutput string
		outputDir  string
		want       string
		wantErr    error
	}{
		{"derived", "notes.md", "", "", "notes.html", nil},
		{"derived keeps directory", filepath.Join("docs", "a.md"), "", "", filepath.Join("docs", "a.html"), nil},
		{"output dir relocates", filepath.Join("docs", "a.md"), "", "public", filepath.Join("public", "a.html"), nil},
		{"flag wins over dir", "a.md", "out.html", "public", "out.html", nil},
		{"flag allows any input name", "README", "index.html", "", "index.html", nil},
		{"underivable name", "README", "", "", "", fileutil.ErrOutputName},
		{"underivable name with dir", "notes.txt", "", "public", "", fileutil.ErrOutputName},
		{"flag naming the input", "notes.md", "notes.md", "", "", ErrOutputInput},
		{"flag naming the input after cleaning", "notes.md", "./notes.md", "", "", ErrOutputInput},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutputPath(tt.input, tt.flagOutput, tt.outputDir)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolveOutputPath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfig - Precedence of flags, env and config file
// ---------------------------------------------------------------------------

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "site.yaml")
	content := "convert:\n  paragraphs: merge\n  standalone: true\ninput:\n  encoding: latin1\noutput:\n  dir: from-file\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	yes, no := true, false

	tests := []struct {
		name   string
		flags  cliFlags
		env    envConfig
		check  func(t *testing.T, cfg *config.Config)
		wantFn string
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.ParagraphMode() != mirage.ParagraphPerLine || cfg.Convert.Standalone {
					t.Errorf("Convert = %+v, want defaults", cfg.Convert)
				}
			},
		},
		{
			name:   "config file from flag",
			flags:  cliFlags{config: configPath},
			wantFn: configPath,
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.ParagraphMode() != mirage.ParagraphMerge || !cfg.Convert.Standalone {
					t.Errorf("Convert = %+v, want values from file", cfg.Convert)
				}
				if cfg.Output.Dir != "from-file" {
					t.Errorf("Output.Dir = %q, want from-file", cfg.Output.Dir)
				}
			},
		},
		{
			name:   "config file from env",
			env:    envConfig{ConfigPath: configPath},
			wantFn: configPath,
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Input.Encoding != "latin1" {
					t.Errorf("Input.Encoding = %q, want latin1", cfg.Input.Encoding)
				}
			},
		},
		{
			name:  "env overrides file",
			flags: cliFlags{config: configPath},
			env:   envConfig{Paragraphs: "line", OutputDir: "from-env", Standalone: &no},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.ParagraphMode() != mirage.ParagraphPerLine {
					t.Errorf("Paragraphs = %q, want line", cfg.Convert.Paragraphs)
				}
				if cfg.Output.Dir != "from-env" || cfg.Convert.Standalone {
					t.Errorf("cfg = %+v, want env values", cfg)
				}
			},
			wantFn: configPath,
		},
		{
			name:  "flags override env",
			flags: cliFlags{paragraphs: "merge", encoding: "utf-16", title: "T", standalone: false, standaloneSet: true},
			env:   envConfig{Paragraphs: "line", Encoding: "latin1", Standalone: &yes},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.ParagraphMode() != mirage.ParagraphMerge {
					t.Errorf("Paragraphs = %q, want merge", cfg.Convert.Paragraphs)
				}
				if cfg.Input.Encoding != "utf-16" {
					t.Errorf("Encoding = %q, want utf-16", cfg.Input.Encoding)
				}
				if cfg.Convert.Standalone {
					t.Error("Standalone = true, want explicit --standalone=false to win")
				}
				if cfg.Convert.Title != "T" {
					t.Errorf("Title = %q, want T", cfg.Convert.Title)
				}
			},
		},
		{
			name:  "unset standalone flag keeps env",
			flags: cliFlags{},
			env:   envConfig{Standalone: &yes},
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.Convert.Standalone {
					t.Error("Standalone = false, want env value")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := config.DefaultConfig()
			cfg, gotPath, err := resolveConfig(&tt.flags, &tt.env, base)
			if err != nil {
				t.Fatalf("resolveConfig() unexpected error: %v", err)
			}
			if gotPath != tt.wantFn {
				t.Errorf("config path = %q, want %q", gotPath, tt.wantFn)
			}
			tt.check(t, cfg)

			if base.Convert.Paragraphs != "line" || base.Convert.Standalone {
				t.Error("resolveConfig() mutated the base config")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfig_Errors - Validation after merge
// ---------------------------------------------------------------------------

func TestResolveConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   cliFlags
		env     envConfig
		wantErr error
	}{
		{"bad paragraph flag", cliFlags{paragraphs: "blocks"}, envConfig{}, mirage.ErrInvalidParagraphMode},
		{"bad encoding env", cliFlags{}, envConfig{Encoding: "ebcdic"}, lineio.ErrUnknownEncoding},
		{"missing config", cliFlags{config: filepath.Join(t.TempDir(), "none.yaml")}, envConfig{}, config.ErrConfigNotFound},
		{"config path is a directory", cliFlags{config: t.TempDir() + string(filepath.Separator)}, envConfig{}, config.ErrConfigRead},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := resolveConfig(&tt.flags, &tt.env, config.DefaultConfig())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolveConfig() error = %v, want %v", err, tt.wantErr)
			}
			if exitCodeFor(err) != ExitUsage {
				t.Errorf("exitCodeFor(%v) = %d, want %d", err, exitCodeFor(err), ExitUsage)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfig_BlankFile - Comment-only config keeps defaults
// ---------------------------------------------------------------------------

func TestResolveConfig_BlankFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blank.yaml")
	if err := os.WriteFile(path, []byte("# just a comment\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	flags := cliFlags{config: path, paragraphs: "merge"}
	cfg, configPath, err := resolveConfig(&flags, &envConfig{}, config.DefaultConfig())
	if err != nil {
		t.Fatalf("resolveConfig() unexpected error: %v", err)
	}
	if configPath != path {
		t.Errorf("configPath = %q, want %q", configPath, path)
	}
	if cfg.ParagraphMode() != mirage.ParagraphMerge {
		t.Errorf("paragraphs = %q, want merge from flag", cfg.Convert.Paragraphs)
	}
	if cfg.Input.Encoding != lineio.EncodingUTF8 || cfg.Banner.Name != "Mirage" {
		t.Errorf("cfg = %+v, want defaults for keys not set", *cfg)
	}
}

// ---------------------------------------------------------------------------
// TestConvertFile - Failures and atomic output
// ---------------------------------------------------------------------------

func TestConvertFile(t *testing.T) {
	t.Parallel()

	newJob := func(t *testing.T, dir, content string) *conversion {
		t.Helper()
		input := filepath.Join(dir, "in.md")
		if err := os.WriteFile(input, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		return &conversion{
			input:  input,
			output: filepath.Join(dir, "in.html"),
			cfg:    config.DefaultConfig(),
			loader: assets.NewEmbeddedLoader(),
		}
	}

	t.Run("reports counts", func(t *testing.T) {
		t.Parallel()

		job := newJob(t, t.TempDir(), "# a\n\nb\nc\n")
		res, err := convertFile(context.Background(), job)
		if err != nil {
			t.Fatalf("convertFile() unexpected error: %v", err)
		}
		if res.lines != 4 || res.fragments != 3 {
			t.Errorf("result = %+v, want 4 lines and 3 fragments", res)
		}
	})

	t.Run("decode failure keeps previous output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		job := newJob(t, dir, "bad \xfe\n")
		if err := os.WriteFile(job.output, []byte("previous"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := convertFile(context.Background(), job)
		if !errors.Is(err, lineio.ErrLineDecode) {
			t.Fatalf("error = %v, want ErrLineDecode", err)
		}
		if got := readOutput(t, job.output); got != "previous" {
			t.Errorf("output = %q, want previous content kept", got)
		}
	})

	t.Run("canceled context writes nothing", func(t *testing.T) {
		t.Parallel()

		job := newJob(t, t.TempDir(), "x\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := convertFile(ctx, job)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
		if fileutil.FileExists(job.output) {
			t.Error("output written despite canceled context")
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		job := newJob(t, t.TempDir(), "")
		job.input = filepath.Join(filepath.Dir(job.input), "gone.md")

		_, err := convertFile(context.Background(), job)
		if !errors.Is(err, ErrInputOpen) || !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("error = %v, want ErrInputOpen wrapping os.ErrNotExist", err)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		job := newJob(t, t.TempDir(), "# x\n")
		job.cfg.Convert.Standalone = true
		job.cfg.Convert.Style = "fancy"

		_, err := convertFile(context.Background(), job)
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Fatalf("error = %v, want ErrStyleNotFound", err)
		}
		if hint := hintFor(err, hintContext{}); !strings.Contains(hint, "available: plain") {
			t.Errorf("hintFor() = %q, want available styles", hint)
		}
	})

	t.Run("standalone with nil loader uses embedded style", func(t *testing.T) {
		t.Parallel()

		job := newJob(t, t.TempDir(), "# x\n")
		job.loader = nil
		job.cfg.Convert.Standalone = true

		if _, err := convertFile(context.Background(), job); err != nil {
			t.Fatalf("convertFile() unexpected error: %v", err)
		}
		want, err := assets.LoadStyle(assets.DefaultStyle)
		if err != nil {
			t.Fatalf("LoadStyle() unexpected error: %v", err)
		}
		if got := readOutput(t, job.output); !strings.Contains(got, "<style>") || !strings.Contains(got, strings.TrimSpace(want)) {
			t.Errorf("output = %q, want the embedded %s style inlined", got, assets.DefaultStyle)
		}
	})

	t.Run("standalone without style", func(t *testing.T) {
		t.Parallel()

		job := newJob(t, t.TempDir(), "# x\n")
		job.cfg.Convert.Standalone = true
		job.cfg.Convert.Style = ""
		job.cfg.Convert.Lang = "de"

		if _, err := convertFile(context.Background(), job); err != nil {
			t.Fatalf("convertFile() unexpected error: %v", err)
		}
		got := readOutput(t, job.output)
		if strings.Contains(got, "<style>") || !strings.Contains(got, `<html lang="de">`) {
			t.Errorf("output = %q, want no style and lang de", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestHintFor - Hint selection
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		hc       hintContext
		contains string
	}{
		{"missing input", errors.Join(ErrInputOpen, os.ErrNotExist), hintContext{input: "notes"}, "did you mean notes.md?"},
		{"config path", config.ErrConfigNotFound, hintContext{configName: "./x.yaml"}, "use --config"},
		{"config name", config.ErrConfigNotFound, hintContext{configName: "work"}, "use --config"},
		{"output name", fileutil.ErrOutputName, hintContext{}, "--output"},
		{"output is input", ErrOutputInput, hintContext{}, "other than the input"},
		{"output create", ErrOutputCreate, hintContext{}, "parent directory"},
		{"decode", lineio.ErrLineDecode, hintContext{}, "windows-1252"},
		{"paragraph mode", mirage.ErrInvalidParagraphMode, hintContext{}, "line, merge"},
		{"no hint", errors.New("other"), hintContext{}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, tt.hc)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}
