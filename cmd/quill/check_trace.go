package main

import (
	"fmt"
	"os"

	"quill/compiler-go/pkg/driver"
	"quill/compiler-go/pkg/typechecker"
)

// runCheckTraced mirrors driver.CheckProgram but wires each checker's trace
// output to stderr.
func runCheckTraced(program *driver.Program) int {
	failed := false
	for _, mod := range program.Modules {
		if mod == nil || mod.AST == nil {
			continue
		}
		fmt.Fprintf(os.Stderr, "package %s\n", mod.Package)
		checker := typechecker.New(program.Context)
		checker.Trace = os.Stderr
		driver.Walk(mod.AST, checker)
		for _, diag := range checker.Diagnostics() {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %s\n", mod.Package, diag)
		}
	}
	if failed {
		return 1
	}
	return 0
}
