package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-mirage/internal/config"
)

// bannerVersion returns the configured version, falling back to the build version.
func bannerVersion(b config.BannerConfig) string {
	if b.Version != "" {
		return b.Version
	}
	return Version
}

// printBanner prints the program banner.
func printBanner(w io.Writer, b config.BannerConfig) {
	fmt.Fprintf(w, "%s - %s written by %s\n", b.Name, b.Description, b.Author)
	fmt.Fprintf(w, "Version %s\n", bannerVersion(b))
	if b.Homepage != "" {
		fmt.Fprintln(w, b.Homepage)
	}
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: mirage [flags] <input.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to HTML: '#' lines become <h1>, other")
	fmt.Fprintln(w, "non-empty lines become <p>. The output is the input name with")
	fmt.Fprintln(w, ".md replaced by .html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: input with .md -> .html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -e, --encoding <name>     Input encoding: utf-8, utf-16, latin1, windows-1252")
	fmt.Fprintln(w, "  -w, --watch               Re-convert whenever the input file changes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -p, --paragraphs <mode>   Paragraph mode: line (one <p> per line), merge")
	fmt.Fprintln(w, "  -s, --standalone          Wrap output in a full HTML5 document")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = first heading, then file name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MIRAGE_CONFIG, MIRAGE_PARAGRAPHS, MIRAGE_ENCODING,")
	fmt.Fprintln(w, "  MIRAGE_OUTPUT_DIR, MIRAGE_STANDALONE")
}
