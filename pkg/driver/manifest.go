package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest models package.yml: the package identity and its dependencies.
type Manifest struct {
	Path         string
	Name         string
	Version      string
	Authors      []string
	Dependencies map[string]*DependencySpec

	// DependencyOrder lists dependency names in sorted order for
	// deterministic resolution.
	DependencyOrder []string
}

// DependencySpec describes one dependency source: a version constraint
// against the registry, a local path, or a git location pinned by rev, tag,
// or branch.
type DependencySpec struct {
	Version string `yaml:"version,omitempty"`
	Path    string `yaml:"path,omitempty"`
	Git     string `yaml:"git,omitempty"`
	Rev     string `yaml:"rev,omitempty"`
	Tag     string `yaml:"tag,omitempty"`
	Branch  string `yaml:"branch,omitempty"`
}

// UnmarshalYAML accepts both the mapping form and the scalar shorthand
// `name: "~> 1.0"`.
func (d *DependencySpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		d.Version = strings.TrimSpace(value.Value)
		return nil
	}
	type plain DependencySpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*d = DependencySpec(p)
	return nil
}

type manifestDisk struct {
	Name         string                     `yaml:"name"`
	Version      string                     `yaml:"version,omitempty"`
	Authors      []string                   `yaml:"authors,omitempty"`
	Dependencies map[string]*DependencySpec `yaml:"dependencies,omitempty"`
}

// LoadManifest parses package.yml from disk.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	var raw manifestDisk
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("manifest: %s missing name", abs)
	}

	manifest := &Manifest{
		Path:         abs,
		Name:         sanitizeSegment(raw.Name),
		Version:      strings.TrimSpace(raw.Version),
		Authors:      raw.Authors,
		Dependencies: raw.Dependencies,
	}
	if manifest.Dependencies == nil {
		manifest.Dependencies = map[string]*DependencySpec{}
	}
	for name, spec := range manifest.Dependencies {
		if spec == nil {
			manifest.Dependencies[name] = &DependencySpec{}
		}
		manifest.DependencyOrder = append(manifest.DependencyOrder, name)
	}
	sort.Strings(manifest.DependencyOrder)
	return manifest, nil
}

// Dir returns the directory holding the manifest.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// sanitizeSegment normalizes a package name into a path-safe identifier.
func sanitizeSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	var b strings.Builder
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
