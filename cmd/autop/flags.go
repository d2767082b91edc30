package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every autop flag.
type cliFlags struct {
	config     string
	shortcodes []string
	noBreaks   bool
	excerpt    bool
	outputDir  string
	workers    int
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses args (without the program name) and returns the input
// files. Usage goes to usageOut on --help or a parse error.
func parseFlags(args []string, usageOut io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("autop", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringArrayVarP(&f.shortcodes, "shortcode", "s", nil, "shortcode whose body is left unformatted (repeatable)")
	fs.BoolVar(&f.noBreaks, "no-br", false, "keep single newlines instead of adding <br />")
	fs.BoolVar(&f.excerpt, "excerpt", false, "format input as an excerpt")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory (default: next to each input)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(usageOut, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.quiet && f.verbose {
		return nil, nil, errConflictingVerbosity
	}

	return f, fs.Args(), nil
}

// isHelp reports whether err is the request for usage, not a failure.
func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
