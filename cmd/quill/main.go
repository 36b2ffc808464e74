// Command quill is the Quill compiler front door: it resolves package
// dependencies and runs the expression typing pass over serialized syntax
// trees.
package main

import (
	"fmt"
	"os"
)

const cliToolVersion = "quill 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "check":
		return runCheck(args[1:])
	case "deps":
		return runDeps(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "quill: unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}
