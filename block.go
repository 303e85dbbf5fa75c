package mirage

import "strings"

// headingMarker opens a level-1 heading when it is the first byte of a line.
const headingMarker = '#'

// Markup emitted by the transducer.
const (
	paragraphOpen  = "<p>"
	paragraphClose = "</p>\n"
	headingOpen    = "<h1>"
	headingClose   = "</h1>\n"

	// emptyParagraph is what an empty line produces in per-line mode.
	// It is dropped rather than emitted.
	emptyParagraph = paragraphOpen + paragraphClose
)

// blockState tracks which block, if any, still needs its closing tag.
type blockState int

const (
	blockNone blockState = iota
	blockParagraph
	blockHeading
)

// transducer is the per-run state of a conversion. It is created by
// Converter.Convert and never shared.
type transducer struct {
	mode  ParagraphMode
	state blockState
}

// isHeading reports whether line starts with the heading marker.
// An empty line has no first byte and is never a heading.
func isHeading(line string) bool {
	return len(line) > 0 && line[0] == headingMarker
}

// headingText strips the marker and at most one following space, so "# x"
// and "#x" both give "x" while "#  x" keeps one leading space.
func headingText(line string) string {
	text := line[1:]
	return strings.TrimPrefix(text, " ")
}

// closeBlock writes the closing tag of the open block, if any.
func (t *transducer) closeBlock(b *strings.Builder) {
	switch t.state {
	case blockParagraph:
		b.WriteString(paragraphClose)
	case blockHeading:
		b.WriteString(headingClose)
	}
	t.state = blockNone
}

// step consumes one line and returns the fragment it produced.
// ok is false when the line contributes nothing to the output.
func (t *transducer) step(line string) (fragment string, ok bool) {
	if t.mode == ParagraphMerge {
		return t.stepMerge(line)
	}

	var b strings.Builder
	if isHeading(line) {
		t.closeBlock(&b)
		b.WriteString(headingOpen)
		t.state = blockHeading
		b.WriteString(headingText(line))
	} else {
		if t.state != blockParagraph {
			b.WriteString(paragraphOpen)
			t.state = blockParagraph
		}
		b.WriteString(line)
	}
	t.closeBlock(&b)

	fragment = b.String()
	if fragment == emptyParagraph {
		return "", false
	}
	return fragment, true
}

// stepMerge keeps a paragraph open across consecutive plain lines.
// Blank lines and headings close it.
func (t *transducer) stepMerge(line string) (string, bool) {
	var b strings.Builder
	switch {
	case isHeading(line):
		t.closeBlock(&b)
		b.WriteString(headingOpen)
		b.WriteString(headingText(line))
		b.WriteString(headingClose)
	case line == "":
		t.closeBlock(&b)
	case t.state == blockParagraph:
		b.WriteByte('\n')
		b.WriteString(line)
	default:
		b.WriteString(paragraphOpen)
		b.WriteString(line)
		t.state = blockParagraph
	}

	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// finish closes a block left open at end of input.
func (t *transducer) finish() (string, bool) {
	if t.state == blockNone {
		return "", false
	}
	var b strings.Builder
	t.closeBlock(&b)
	return b.String(), true
}
