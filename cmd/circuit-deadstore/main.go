package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	cerrors "circuitlint/internal/errors"
	"circuitlint/internal/printer"
	"circuitlint/internal/program"
)

func main() {
	warnOnly := flag.Bool("warn-only", false, "print diagnostics only, skip the rewritten source")
	writeBack := flag.Bool("w", false, "rewrite the file in place instead of printing to stdout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: circuit-deadstore [-warn-only] [-w] <file.circuit>")
		os.Exit(1)
	}

	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	result := program.Compile(path, 0, string(source))
	reporter := cerrors.NewErrorReporter(path, string(source))

	hadError := false
	for _, diag := range result.Diagnostics {
		fmt.Print(reporter.FormatError(diag))
		if diag.Level == cerrors.Error {
			hadError = true
		}
	}

	if hadError {
		color.Red("failed to compile %s", path)
		os.Exit(1)
	}

	if *warnOnly {
		color.Green("compiled %s", path)
		return
	}

	rewritten := renderCircuit(result.Circuit)

	if *writeBack {
		if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
			color.Red("failed to write %s: %s", path, err)
			os.Exit(1)
		}
	} else {
		fmt.Print(rewritten)
	}

	color.Green("compiled %s", path)
}

func renderCircuit(c *program.Circuit) string {
	var b strings.Builder
	for _, fn := range c.Functions {
		b.WriteString(printer.Function(fn))
		b.WriteString("\n")
	}
	for _, tmpl := range c.Templates {
		b.WriteString(printer.Template(tmpl))
		b.WriteString("\n")
	}
	return b.String()
}
