/*
File    : vanction/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the persistent Read-Eval-Print Loop for the
vanction interpreter. It keeps one eval.Evaluator alive across inputs
so definitions made on one line are visible on the next, reads
multi-line input when braces are unbalanced, and offers `/scope` and
`/trace` introspection commands on top of the evaluator's global
frame.
*/
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/akashmaji946/vanction/eval"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// ContinuationPrompt is shown while a multi-line input's braces are
	// still unbalanced.
	ContinuationPrompt string
}

// NewRepl builds a Repl with the given cosmetic configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:             banner,
		Version:            version,
		Author:             author,
		Line:               line,
		License:            license,
		Prompt:             prompt,
		ContinuationPrompt: "...> ",
	}
}

// PrintBannerInfo writes the startup banner and a short usage summary.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to vanction!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter; unbalanced braces continue the prompt")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit' or 'quit' to leave, '/scope' to inspect bindings, '/trace' for a YAML dump")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against one persistent eval.Evaluator until
// the user exits or EOF is reached (Ctrl+D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	evaluator.File = "<repl>"

	var pending strings.Builder

	for {
		prompt := r.Prompt
		if pending.Len() > 0 {
			prompt = r.ContinuationPrompt
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		trimmed := strings.Trim(line, " \t\r")
		if pending.Len() == 0 {
			switch trimmed {
			case "":
				continue
			case "exit", "quit":
				writer.Write([]byte("Good Bye!\n"))
				return
			case "/scope":
				r.printScope(writer, evaluator)
				continue
			case "/trace":
				r.printTrace(writer, evaluator)
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteString("\n")
		rl.SaveHistory(line)

		if bracesBalanced(pending.String()) {
			source := pending.String()
			pending.Reset()
			r.executeWithRecovery(writer, source, evaluator)
		}
	}
}

// bracesBalanced reports whether every `{`/`[`/`(` in src has been
// closed, ignoring characters inside string literals so a brace typed
// inside a quoted string does not force an extra continuation line.
func bracesBalanced(src string) bool {
	depth := 0
	inString := false
	var quote rune
	escaped := false
	for _, r := range src {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				inString = false
			}
			continue
		}
		switch r {
		case '"', '\'':
			inString = true
			quote = r
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
		}
	}
	return depth <= 0
}

// executeWithRecovery evaluates one chunk of source against the
// persistent evaluator, printing a pretty error in red or, for a
// trailing expression, its value in yellow. Unlike file mode the REPL
// never exits on error; it reports and returns to the prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, source string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	result, err, parseErrs := evaluator.EvalSource(source)
	if parseErrs != nil && parseErrs.HasErrors() {
		for _, pe := range parseErrs.Errors() {
			redColor.Fprintf(writer, "%s", pe.Pretty(source))
		}
		return
	}
	if err != nil {
		redColor.Fprintf(writer, "%s", err.Pretty(source))
		return
	}
	if result != nil && result.Kind() != "null" {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}

// printScope lists every name bound directly in the evaluator's global
// frame, one per line, sorted for stable output.
func (r *Repl) printScope(writer io.Writer, evaluator *eval.Evaluator) {
	names := evaluator.Global.Names()
	if len(names) == 0 {
		cyanColor.Fprintf(writer, "(empty scope)\n")
		return
	}
	keys := make([]string, 0, len(names))
	for name := range names {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	for _, name := range keys {
		val := names[name]
		cyanColor.Fprintf(writer, "%s = %s (%s)\n", name, val.String(), val.Kind())
	}
}

// printTrace renders the global frame's bindings as YAML, giving a
// more structured view than /scope for inspecting nested values.
func (r *Repl) printTrace(writer io.Writer, evaluator *eval.Evaluator) {
	names := evaluator.Global.Names()
	dump := make(map[string]string, len(names))
	for name, val := range names {
		dump[name] = fmt.Sprintf("%s: %s", val.Kind(), val.String())
	}
	out, err := yaml.Marshal(dump)
	if err != nil {
		redColor.Fprintf(writer, "[TRACE ERROR] %v\n", err)
		return
	}
	writer.Write(out)
}
