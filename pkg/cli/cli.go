// Package cli provides the command line interface of fxsum.
package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

// Command can be any of:
//
//	CommandSum
//	CommandHelp
type Command any

// CommandSum hashes the given files,
// or standard input if no file path is given.
type CommandSum struct {
	FilePaths []string
	Verbose   bool
}

type CommandHelp struct{}

func Parse(w io.Writer, args []string) (cmd Command) {
	executableName := "fxsum"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet(executableName, flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fmt.Sprintf("usage: %s [flags] [file ...]", executableName),
			"",
			"prints the 64-bit fxhash of every given file,",
			"or of standard input if no file is given.",
			"",
			"flags:",
			" -v: prints a summary and enables debug logging",
		)
	}

	c := CommandSum{}
	flags.BoolVar(&c.Verbose, "v", false, "")

	var flagArgs []string
	if len(args) > 1 {
		flagArgs = args[1:]
	}
	if err := flags.Parse(flagArgs); err != nil {
		// flags will automatically call .Usage()
		if err == flag.ErrHelp {
			return CommandHelp{}
		}
		return nil
	}

	c.FilePaths = flags.Args()
	return c
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}
