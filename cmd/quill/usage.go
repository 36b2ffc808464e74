package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprint(os.Stderr, `usage: quill <command> [arguments]

Commands:
  check [dir]    typecheck the package rooted at dir (default ".")
  deps [dir]     resolve and fetch the package's dependencies
  version        print the tool version

Flags for check:
  -trace         print one line per typed node

Environment:
  QUILL_CACHE    dependency cache directory
  QUILL_REGISTRY registry root for version dependencies
`)
}
