package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// printUsage prints the command usage and flag defaults.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: autop [flags] [file ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Wrap plain text in <p> paragraphs and <br /> line breaks.")
	fmt.Fprintln(w, "With no files, reads stdin and writes stdout. <pre> blocks and")
	fmt.Fprintln(w, "[noformat]...[/noformat] regions are copied through unchanged.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 error, 2 usage or config, 3 I/O.")
}
