package main

import (
	"fmt"
	"os"
	"path/filepath"

	"quill/compiler-go/pkg/driver"
)

func runDeps(args []string) int {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	manifest, err := driver.LoadManifest(filepath.Join(dir, "package.yml"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cache := cacheDir()
	if cache == "" {
		fmt.Fprintln(os.Stderr, "quill: no cache directory available; set QUILL_CACHE")
		return 1
	}

	lock := driver.NewLockfile(manifest.Name, cliToolVersion)
	registry := newRegistryFetcher(cache)
	gitDeps := newGitFetcher(cache)

	for _, name := range manifest.DependencyOrder {
		spec := manifest.Dependencies[name]
		switch {
		case spec.Path != "":
			// Path dependencies resolve in place; verify and move on.
			depDir := filepath.Join(manifest.Dir(), spec.Path)
			if _, err := os.Stat(depDir); err != nil {
				fmt.Fprintf(os.Stderr, "quill: dependency %q: %v\n", name, err)
				return 1
			}
		case spec.Git != "":
			locked, _, err := gitDeps.Fetch(name, spec)
			if err != nil {
				fmt.Fprintf(os.Stderr, "quill: dependency %q: %v\n", name, err)
				return 1
			}
			lock.Add(locked)
		case spec.Version != "":
			locked, _, err := registry.Fetch(name, spec.Version)
			if err != nil {
				fmt.Fprintf(os.Stderr, "quill: dependency %q: %v\n", name, err)
				return 1
			}
			lock.Add(locked)
		default:
			fmt.Fprintf(os.Stderr, "quill: dependency %q needs a version, path, or git source\n", name)
			return 1
		}
	}

	if len(lock.Packages) == 0 {
		fmt.Fprintln(os.Stdout, "no fetched dependencies")
		return 0
	}
	lockPath := filepath.Join(manifest.Dir(), "package.lock")
	if err := driver.WriteLockfile(lock, lockPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintf(os.Stdout, "locked %d dependencies in %s\n", len(lock.Packages), lockPath)
	return 0
}
