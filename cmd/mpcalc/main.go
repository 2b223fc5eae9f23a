// Command mpcalc is the command-line entry point for cmparith: an
// interactive terminal over Unlimited or Fixed(32) precision, or a
// non-interactive showcase of the library.
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/skafara/cmparith"
	"github.com/skafara/cmparith/term"
)

var modePattern = regexp.MustCompile(`^(1|2|3)$`)

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("\tmpcalc <mode>")
	fmt.Println()
	fmt.Println("\t<mode>\t- 1: Terminal [Unlimited Precision]")
	fmt.Println("\t\t- 2: Terminal [32B Precision]")
	fmt.Println("\t\t- 3: cmparith Library Showcase")
}

func printError(text string) {
	fmt.Fprintln(os.Stderr, "[ERROR]", text)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		printError("Invalid Arguments Count")
		printHelp()
		return 1
	}

	if !modePattern.MatchString(args[0]) {
		printError("Invalid Mode Parameter")
		printHelp()
		return 1
	}

	switch args[0] {
	case "1":
		term.New(cmparith.Unlimited, os.Stdout).Run(os.Stdin)
	case "2":
		term.New(cmparith.Fixed(32), os.Stdout).Run(os.Stdin)
	case "3":
		term.RunShowcase(os.Stdout)
	}

	return 0
}
