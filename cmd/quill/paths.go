package main

import (
	"os"
	"path/filepath"
)

// cacheDir picks the dependency cache root: QUILL_CACHE when set, else the
// user cache directory.
func cacheDir() string {
	if dir := os.Getenv("QUILL_CACHE"); dir != "" {
		return dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "quill")
}
