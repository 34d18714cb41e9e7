/*
File    : vanction/cmd/vanction/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point of the vanction interpreter. It
supports running a `.va` file, launching the persistent REPL, and a
handful of informational/debugging flags.
*/
package main

import (
	"os"

	"github.com/akashmaji946/vanction/eval"
	"github.com/akashmaji946/vanction/parser"
	"github.com/akashmaji946/vanction/repl"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

// VERSION is the current release of the vanction interpreter.
var VERSION = "v1.0.0"

// AUTHOR is the contact for the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE names the interpreter's software license.
var LICENSE = "MIT"

// PROMPT is the command prompt shown in REPL mode.
var PROMPT = "vanction> "

// BANNER is the ASCII art logo shown at REPL startup.
var BANNER = `
 ██    ██  █████  ███    ██  ██████ ████████ ██  ██████  ███    ██
 ██    ██ ██   ██ ████   ██ ██         ██    ██ ██    ██ ████   ██
 ██    ██ ███████ ██ ██  ██ ██         ██    ██ ██    ██ ██ ██  ██
  ██  ██  ██   ██ ██  ██ ██ ██         ██    ██ ██    ██ ██  ██ ██
   ████   ██   ██ ██   ████  ██████    ██    ██  ██████  ██   ████
`

// LINE is a separator used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on argv per the usage table: a bare invocation or
// `--repl` starts the persistent REPL; a path runs that file; the
// informational flags print and exit 0; a parse/runtime error exits 1.
func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		startRepl()
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--version", "-v":
		showVersion()
		os.Exit(0)
	case "--repl":
		startRepl()
		return
	}

	dumpAST := false
	fileName := ""
	for _, a := range args {
		if a == "--dump-ast" {
			dumpAST = true
			continue
		}
		if fileName == "" {
			fileName = a
		}
	}
	if fileName == "" {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] no source file given\n")
		os.Exit(1)
	}
	runFile(fileName, dumpAST)
}

func startRepl() {
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("vanction - a small C-like scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  vanction                    Start interactive REPL mode")
	yellowColor.Println("  vanction FILE               Execute a vanction file (.va)")
	yellowColor.Println("  vanction FILE --dump-ast    Execute FILE, dumping its parsed AST first")
	yellowColor.Println("  vanction --repl             Start interactive REPL mode")
	yellowColor.Println("  vanction --help             Display this help message")
	yellowColor.Println("  vanction --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  exit, quit                 Leave the REPL")
	yellowColor.Println("  /scope                     Show the current global bindings")
	yellowColor.Println("  /trace                     Dump the current global frame as YAML")
}

func showVersion() {
	cyanColor.Println("vanction - a small C-like scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads, optionally dumps, and executes a vanction source file,
// pretty-printing any parse or runtime error and exiting 1 on failure.
func runFile(fileName string, dumpAST bool) {
	data, ioErr := os.ReadFile(fileName)
	if ioErr != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, ioErr)
		os.Exit(1)
	}
	source := string(data)

	if dumpAST {
		p := parser.NewParser(source, fileName)
		prog := p.Parse()
		if p.Errors.HasErrors() {
			for _, err := range p.Errors.Errors() {
				redColor.Fprintf(os.Stderr, "%s", err.Pretty(source))
			}
			os.Exit(1)
		}
		spew.Fdump(os.Stdout, prog)
	}

	evaluator := eval.NewEvaluator()
	if err := evaluator.Run(fileName, source); err != nil {
		redColor.Fprintf(os.Stderr, "%s", err.Pretty(source))
		os.Exit(1)
	}
}
