package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	output      string
	config      string
	paragraphs  string
	title       string
	encoding    string
	standalone  bool
	watch       bool
	printConfig bool
	quiet       bool
	verbose     bool
	version     bool
	help        bool

	// standaloneSet records an explicit --standalone, so --standalone=false
	// can override a config file that enables it.
	standaloneSet bool
}

// newFlagSet registers all flags on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mirage", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.paragraphs, "paragraphs", "p", "", "paragraph mode: line, merge")
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap output in a full HTML5 document")
	fs.StringVar(&f.title, "title", "", "document title for --standalone")
	fs.StringVarP(&f.encoding, "encoding", "e", "", "input encoding")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-convert whenever the input file changes")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	return fs
}

// parseFlags parses args (without the program name) and returns the flags
// and the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.standaloneSet = fs.Changed("standalone")
	return f, fs.Args(), nil
}
