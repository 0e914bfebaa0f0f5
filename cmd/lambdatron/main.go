// Command lambdatron is a line-oriented REPL over the interpreter's
// embedding surface: one top-level form per prompt line, result or
// error printed back.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/masukomi/lambdatron"
)

func main() {
	interp, err := lambdatron.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lambdatron: standard library failed to load: %v\n", err)
		os.Exit(1)
	}

	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			outcome := interp.Evaluate(line)
			if outcome.Err != nil {
				fmt.Println(outcome.Err)
			} else {
				fmt.Println(outcome.Value.String())
			}
		}
		fmt.Print("> ")
	}
	fmt.Println()
}
