// Command lispy is a thin CLI/REPL client over the embeddable lispy
// package, grounded on the teacher's cmd/msg REPL loop (readByParseProbe +
// liner history), narrowed to the two commands a language core actually
// needs a driver for: running a file and an interactive REPL. Formatting,
// module fetching, and a test runner are host-tool concerns the teacher's
// CLI bundles for its own scripting language; Lispy leaves those to
// whatever embeds it (spec.md §6, "an embeddable core, not a shipped
// application").
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/andrakis/node-lispy"
)

const (
	appName     = "lispy"
	historyFile = ".lispy_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("lispy %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", lispy.Version)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(lispy.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lispy %s

Usage:
  %s run [--debug] <file.lsp>   Run a script.
  %s repl [--debug]             Start the REPL.
  %s version                    Print the version.

`, lispy.Version, appName, appName, appName)
}

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	debug := fs.Bool("debug", false, "enable evaluator trace output")
	fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [--debug] <file.lsp>\n", appName)
		return 2
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	lispy.SetDebug(*debug)
	ip := lispy.NewInterpreter()
	v, err := ip.EvalPersistentSource(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(lispy.ToDisplayString(v))
	return 0
}

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	debug := fs.Bool("debug", false, "enable evaluator trace output")
	fs.Parse(args)
	lispy.SetDebug(*debug)

	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := lispy.NewInterpreter()

	for {
		code, ok := readBalancedForm(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == ":quit" {
			return 0
		}
		if trimmed == "" {
			continue
		}

		v, err := ip.EvalPersistentSource(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(lispy.ToDisplayString(v))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readBalancedForm reads lines from ln until parentheses/brackets/braces
// balance (or the input is a single atom), prompting with cont on
// continuation lines. Grounded on the teacher's readByParseProbe, adapted
// from a parser-probe loop to a plain bracket counter, since Lispy's Parse
// doesn't distinguish "incomplete" from "malformed" the way the teacher's
// recursive-descent parser does.
func readBalancedForm(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	depth := 0
	inString := false

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		for i := 0; i < len(line); i++ {
			c := line[i]
			if inString {
				if c == '\\' {
					i++
				} else if c == '"' {
					inString = false
				}
				continue
			}
			switch c {
			case '"':
				inString = true
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
		}

		if depth <= 0 && !inString && strings.TrimSpace(b.String()) != "" {
			return b.String(), true
		}
	}
}
