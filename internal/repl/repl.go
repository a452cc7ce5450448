// Package repl provides the interactive prompt.
//
// Each line runs through the pipeline with its own diagnostics, so an
// error on one line never poisons the next. Lines starting with a colon
// are prompt commands rather than source code.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tjarratt/golox/internal/inspect"
	"github.com/tjarratt/golox/internal/lox"
)

const prompt = "> "

// metaCommands lists every prompt command, for the help text and for
// suggesting a fix when one is mistyped
var metaCommands = []string{":tokens", ":ast", ":format", ":debug", ":help", ":quit"}

// Start reads lines from in and runs each through the pipeline, writing
// results and diagnostics to out. Errors never end the loop; only :quit
// or end of input do.
func Start(in io.Reader, out io.Writer) {
	StartWithRunner(lox.New(), in, out)
}

// StartWithRunner runs the prompt on a caller-configured runner, so
// command line flags carry over into the session
func StartWithRunner(runner *lox.Runner, in io.Reader, out io.Writer) {
	input := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)

		if !input.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(input.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := metaCommand(runner, line, out); quit {
				return
			}
			continue
		}

		output, reporter, err := runner.Run(line, "<stdin>")
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if output != "" {
			fmt.Fprintln(out, output)
		}
		if reporter.HasErrors() {
			fmt.Fprintln(out, reporter.Format())
		}
	}
}

// metaCommand executes one :command line, reporting whether the prompt
// should exit
func metaCommand(runner *lox.Runner, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	command := fields[0]

	switch command {
	case ":quit":
		return true

	case ":help":
		printHelp(out)

	case ":tokens":
		runner.SetShowTokens(!runner.ShowTokens())
		fmt.Fprintf(out, "token dumps %s\n", onOff(runner.ShowTokens()))

	case ":ast":
		runner.SetShowTokens(false)
		fmt.Fprintln(out, "printing parse trees")

	case ":debug":
		runner.SetDebug(!runner.Debug())
		fmt.Fprintf(out, "raw tree dumps %s\n", onOff(runner.Debug()))

	case ":format":
		if len(fields) < 2 {
			fmt.Fprintf(out, "current format: %s\n", runner.Format())
			break
		}
		format, err := inspect.ParseFormat(fields[1])
		if err != nil {
			fmt.Fprintln(out, err)
			break
		}
		runner.SetFormat(format)
		fmt.Fprintf(out, "format set to %s\n", format)

	default:
		suggest(command, out)
	}

	return false
}

// suggest answers an unknown command with the closest known one
func suggest(command string, out io.Writer) {
	matches := fuzzy.RankFindNormalizedFold(command, metaCommands)
	if len(matches) == 0 {
		fmt.Fprintf(out, "unknown command %s (:help lists commands)\n", command)
		return
	}

	sort.Sort(matches)
	fmt.Fprintf(out, "unknown command %s. did you mean %s?\n", command, matches[0].Target)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  :tokens      toggle token dumps (token mode skips parsing)")
	fmt.Fprintln(out, "  :ast         print parse trees again (the default)")
	fmt.Fprintln(out, "  :format <f>  set the output format: text, json, yaml")
	fmt.Fprintln(out, "  :debug       toggle raw parse tree dumps")
	fmt.Fprintln(out, "  :help        show this help")
	fmt.Fprintln(out, "  :quit        leave the prompt")
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
