package main

import (
	"fmt"
	"os"

	"quill/compiler-go/pkg/driver"
)

func runCheck(args []string) int {
	trace := false
	dir := "."
	for _, arg := range args {
		switch arg {
		case "-trace", "--trace":
			trace = true
		default:
			dir = arg
		}
	}

	loader := driver.NewLoader(cacheDir())
	program, err := loader.Load(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if trace {
		return runCheckTraced(program)
	}

	diags, err := driver.CheckProgram(program)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, diag := range diags {
		printDiagnostic(diag)
	}
	if len(diags) > 0 {
		return 1
	}
	fmt.Fprintf(os.Stdout, "checked %d package(s)\n", len(program.Modules))
	return 0
}

func printDiagnostic(diag driver.ModuleDiagnostic) {
	where := diag.Package
	if len(diag.Files) > 0 {
		where = diag.Files[0]
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", where, diag.Diagnostic)
}
