package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "package.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestBasic(t *testing.T) {
	path := writeManifest(t, `
name: quill demo
version: "0.2.0"
authors:
  - Ada
dependencies:
  collections: "~> 1.0"
  local:
    path: ../local
  tooling:
    git: https://example.com/tooling.git
    tag: v1.2.0
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}

	if manifest.Name != "quill_demo" {
		t.Fatalf("Name = %q, want quill_demo", manifest.Name)
	}
	if manifest.Version != "0.2.0" {
		t.Fatalf("Version = %q", manifest.Version)
	}
	if len(manifest.Authors) != 1 || manifest.Authors[0] != "Ada" {
		t.Fatalf("Authors unexpected: %#v", manifest.Authors)
	}

	// The scalar shorthand becomes a version constraint.
	collections := manifest.Dependencies["collections"]
	if collections == nil || collections.Version != "~> 1.0" {
		t.Fatalf("collections dependency not parsed: %#v", collections)
	}
	local := manifest.Dependencies["local"]
	if local == nil || local.Path != "../local" {
		t.Fatalf("path dependency not parsed: %#v", local)
	}
	tooling := manifest.Dependencies["tooling"]
	if tooling == nil || tooling.Git != "https://example.com/tooling.git" || tooling.Tag != "v1.2.0" {
		t.Fatalf("git dependency not parsed: %#v", tooling)
	}

	want := []string{"collections", "local", "tooling"}
	if len(manifest.DependencyOrder) != len(want) {
		t.Fatalf("DependencyOrder = %v", manifest.DependencyOrder)
	}
	for i, name := range want {
		if manifest.DependencyOrder[i] != name {
			t.Fatalf("DependencyOrder = %v, want %v", manifest.DependencyOrder, want)
		}
	}

	if manifest.Dir() != filepath.Dir(path) {
		t.Fatalf("Dir() = %q", manifest.Dir())
	}
}

func TestLoadManifestRequiresName(t *testing.T) {
	path := writeManifest(t, "version: \"1.0\"\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("a manifest without a name should be rejected")
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "package.yml")); err == nil {
		t.Fatalf("a missing manifest should be an error")
	}
}

func TestSanitizeSegment(t *testing.T) {
	cases := map[string]string{
		"quill demo":  "quill_demo",
		"a/b":         "a_b",
		"ok-name_1.0": "ok-name_1.0",
		"  padded  ":  "padded",
	}
	for in, want := range cases {
		if got := sanitizeSegment(in); got != want {
			t.Fatalf("sanitizeSegment(%q) = %q, want %q", in, got, want)
		}
	}
}
