// Command keychord inspects and exercises keystroke parsing, keymap
// matching and terminal key encoding.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"parse", "parse [-layout ID] KEYSTROKE...     canonical form, platform glyphs, xterm code", runParse},
	{"match", "match [-config FILE] [-keymap FILE]... [-context EXPR] KEYS...\n" +
		"                                        feed keystrokes through the keymap dispatcher", runMatch},
	{"vim", "vim [-layout ID] KEYSTROKE...       vim-style normalization", runVim},
	{"esc", "esc [-app-cursor] [-alt-screen] [-alt-meta] KEYSTROKE...\n" +
		"                                        terminal escape sequences", runEsc},
	{"listen", "listen [-config FILE] [-context EXPR]\n" +
		"                                        show live key events and dispatch results", runListen},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	name, rest := args[0], args[1:]
	switch name {
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "keychord %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if err := cmd.run(rest, stdout, stderr); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			fmt.Fprintf(stderr, "keychord %s: %v\n", name, err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stderr, "keychord: unknown command %q\n\n", name)
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "keychord - keystroke and keymap toolkit\n\n")
	fmt.Fprintf(w, "Usage:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  keychord %s\n", cmd.usage)
	}
	fmt.Fprintf(w, "  keychord version\n")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint(*s) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
