package mirage

import (
	"fmt"
	"strings"
)

// ParagraphMode selects how plain text lines are grouped into paragraphs.
type ParagraphMode int

const (
	// ParagraphPerLine closes every block on the line that opened it,
	// so each non-empty plain line becomes its own <p> element.
	ParagraphPerLine ParagraphMode = iota

	// ParagraphMerge keeps a paragraph open across consecutive plain lines.
	// A blank line, a heading or the end of input closes it.
	ParagraphMerge
)

// paragraphModeNames maps modes to their configuration names.
var paragraphModeNames = map[ParagraphMode]string{
	ParagraphPerLine: "line",
	ParagraphMerge:   "merge",
}

// String returns the configuration name of the mode.
func (m ParagraphMode) String() string {
	if name, ok := paragraphModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ParagraphMode(%d)", int(m))
}

// ParseParagraphMode parses a mode name ("line" or "merge", case-insensitive).
func ParseParagraphMode(name string) (ParagraphMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for mode, modeName := range paragraphModeNames {
		if modeName == normalized {
			return mode, nil
		}
	}
	return ParagraphPerLine, fmt.Errorf("%w: %q (must be line or merge)", ErrInvalidParagraphMode, name)
}

// ParagraphModeNames returns the accepted mode names in declaration order.
func ParagraphModeNames() []string {
	return []string{ParagraphPerLine.String(), ParagraphMerge.String()}
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	paragraphs ParagraphMode
}

// WithParagraphMode sets how plain lines are grouped into paragraphs.
// Panics on an unknown mode (programmer error, use ParseParagraphMode for user input).
func WithParagraphMode(m ParagraphMode) Option {
	if _, ok := paragraphModeNames[m]; !ok {
		panic(fmt.Sprintf("mirage: unknown paragraph mode %d", int(m)))
	}
	return func(c *Converter) {
		c.cfg.paragraphs = m
	}
}
