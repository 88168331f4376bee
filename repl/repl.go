// Package repl is an interactive snippet runner: read one line, parse it
// with the toy grammar, print the AST back.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"circuitlint/grammar"
)

const PROMPT = ">> "

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		program, err := grammar.ParseString("<repl>", line)
		if err != nil {
			grammar.ReportParseError(line, err)
			continue
		}

		fmt.Fprintf(out, "AST:\n%s\n", program.String())
	}
}
