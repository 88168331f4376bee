package main

import (
	"fmt"
	"os"

	"circuitlint/grammar"
	"circuitlint/repl"
	"github.com/fatih/color"
)

func main() {
	if len(os.Args) < 2 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]
	program, err := grammar.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}

	fmt.Println("Parsed program:")
	fmt.Print(program.String())

	color.Green("parsed %s", path)
}
