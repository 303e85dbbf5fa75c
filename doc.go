// Package mirage converts a tiny markdown-like format to HTML, one line at a time.
//
// # Format
//
// Two constructs are recognised:
//
//   - a line starting with "#" is a level-1 heading; the marker and at most
//     one following space are stripped
//   - any other non-empty line is paragraph text, copied unmodified
//
// Empty lines produce no output. Nothing else (lists, emphasis, links, code)
// is interpreted.
//
// # Quick Start
//
//	fragments := mirage.Convert([]string{"# Title", "Body text"})
//	// fragments[0] == "<h1>Title</h1>\n"
//	// fragments[1] == "<p>Body text</p>\n"
//
// Convert never fails. Fragments appear in input order and concatenate into
// well-formed HTML.
//
// # Paragraph Modes
//
// By default every line closes the block it opened, so consecutive text lines
// become separate paragraphs. ParagraphMerge keeps a paragraph open until a
// blank line, a heading, or the end of input:
//
//	conv := mirage.New(mirage.WithParagraphMode(mirage.ParagraphMerge))
//	html := conv.ConvertString("Line one\nLine two\n")
//	// html == "<p>Line one\nLine two</p>\n"
//
// # Standalone Documents
//
// RenderDocument wraps fragments in an HTML5 page:
//
//	page, err := mirage.RenderDocument(mirage.Document{
//	    Title: mirage.FirstHeading(lines),
//	    Body:  mirage.Convert(lines),
//	})
package mirage
