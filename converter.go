package mirage

import "strings"

// Converter turns markdown-like lines into HTML fragments.
// A Converter only holds options, so one value may be shared between goroutines;
// every call to Convert runs on its own state.
type Converter struct {
	cfg converterConfig
}

// defaultConverter backs the package-level Convert.
var defaultConverter = New()

// New creates a Converter. Without options it uses ParagraphPerLine.
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{paragraphs: ParagraphPerLine},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ParagraphMode returns the mode the converter was built with.
func (c *Converter) ParagraphMode() ParagraphMode {
	return c.cfg.paragraphs
}

// Convert converts lines to HTML fragments, preserving line order.
// Lines must not contain newlines. Lines that produce no markup, such as
// empty lines, contribute no fragment. Convert never fails.
func (c *Converter) Convert(lines []string) []string {
	t := &transducer{mode: c.cfg.paragraphs}
	fragments := make([]string, 0, len(lines))

	for _, line := range lines {
		if fragment, ok := t.step(line); ok {
			fragments = append(fragments, fragment)
		}
	}
	if fragment, ok := t.finish(); ok {
		fragments = append(fragments, fragment)
	}

	return fragments
}

// ConvertString converts a whole text and returns the concatenated HTML.
// Lines are split on "\n"; a "\r" before the newline is dropped.
func (c *Converter) ConvertString(text string) string {
	return strings.Join(c.Convert(SplitLines(text)), "")
}

// Convert converts lines with the default per-line paragraph mode.
func Convert(lines []string) []string {
	return defaultConverter.Convert(lines)
}

// SplitLines splits text into lines without their terminators.
// A trailing newline does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
