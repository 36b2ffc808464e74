package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/typechecker"
	"quill/compiler-go/pkg/types"
)

// Module aggregates the serialized sources of one Quill package.
type Module struct {
	Package string
	AST     *ast.Node
	Files   []string
}

// Program is a loaded entry package with its dependencies, dependency-first,
// sharing one frozen nominal context.
type Program struct {
	Entry   *Module
	Modules []*Module
	Context *types.Context
}

// Loader resolves packages from manifests and serialized syntax trees.
type Loader struct {
	// CacheDir is where fetched dependencies live (git and registry
	// sources); path dependencies resolve relative to their manifest.
	CacheDir string
}

// NewLoader constructs a loader. An empty cacheDir restricts resolution to
// path dependencies.
func NewLoader(cacheDir string) *Loader {
	return &Loader{CacheDir: cacheDir}
}

// Load reads the package rooted at entryDir, resolves its dependency
// closure, binds scopes, and registers every nominal declaration in a fresh
// context.
func (l *Loader) Load(entryDir string) (*Program, error) {
	ctx := types.NewContext()
	loaded := make(map[string]*Module)
	loading := make(map[string]bool)

	entry, modules, err := l.load(entryDir, ctx, loaded, loading)
	if err != nil {
		return nil, err
	}
	return &Program{Entry: entry, Modules: modules, Context: ctx}, nil
}

func (l *Loader) load(dir string, ctx *types.Context, loaded map[string]*Module, loading map[string]bool) (*Module, []*Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: resolve %s: %w", dir, err)
	}
	if mod, ok := loaded[abs]; ok {
		return mod, nil, nil
	}
	if loading[abs] {
		return nil, nil, fmt.Errorf("loader: dependency cycle through %s", abs)
	}
	loading[abs] = true
	defer delete(loading, abs)

	manifest, err := LoadManifest(filepath.Join(abs, "package.yml"))
	if err != nil {
		return nil, nil, err
	}

	var lock *Lockfile
	if lockPath := filepath.Join(abs, "package.lock"); fileExists(lockPath) {
		lock, err = LoadLockfile(lockPath)
		if err != nil {
			return nil, nil, err
		}
	}

	var ordered []*Module
	packages := make(map[string]*ast.Node, len(manifest.Dependencies))
	for _, name := range manifest.DependencyOrder {
		spec := manifest.Dependencies[name]
		depDir, err := l.dependencyDir(manifest, lock, name, spec)
		if err != nil {
			return nil, nil, err
		}
		dep, depModules, err := l.load(depDir, ctx, loaded, loading)
		if err != nil {
			return nil, nil, err
		}
		ordered = append(ordered, depModules...)
		packages[name] = exportPackage(name, dep, ctx)
	}

	mod, err := l.loadSources(manifest, abs)
	if err != nil {
		return nil, nil, err
	}
	if err := BindModule(mod.AST, ctx, packages); err != nil {
		return nil, nil, err
	}

	loaded[abs] = mod
	ordered = append(ordered, mod)
	return mod, ordered, nil
}

func (l *Loader) loadSources(manifest *Manifest, dir string) (*Module, error) {
	srcDir := filepath.Join(dir, "src")
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("loader: package %s missing src directory: %w", manifest.Name, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ast.yml") {
			continue
		}
		files = append(files, filepath.Join(srcDir, entry.Name()))
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("loader: package %s has no .ast.yml sources", manifest.Name)
	}

	merged := ast.New(ast.KindModule)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", file, err)
		}
		decoded, err := DecodeModule(data)
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", file, err)
		}
		merged.Add(decoded.Children...)
	}

	return &Module{Package: manifest.Name, AST: merged, Files: files}, nil
}

func (l *Loader) dependencyDir(manifest *Manifest, lock *Lockfile, name string, spec *DependencySpec) (string, error) {
	if spec.Path != "" {
		return filepath.Join(manifest.Dir(), spec.Path), nil
	}
	if l.CacheDir == "" {
		return "", fmt.Errorf("loader: dependency %q needs a cache; run 'quill deps' first", name)
	}
	locked, ok := lock.Lookup(name)
	if !ok {
		return "", fmt.Errorf("loader: dependency %q not locked; run 'quill deps' first", name)
	}
	dir := filepath.Join(l.CacheDir, "pkg", "src", locked.Name, locked.Version)
	if !fileExists(dir) {
		return "", fmt.Errorf("loader: dependency %q not cached at %s; run 'quill deps'", name, dir)
	}
	return dir, nil
}

// exportPackage builds the package declaration node for a loaded dependency
// and registers its exported nominals under their qualified names.
func exportPackage(alias string, dep *Module, ctx *types.Context) *ast.Node {
	pkg := NewPackageNode(alias, dep.AST.Children)
	for _, decl := range dep.AST.Children {
		switch decl.Kind {
		case ast.KindClass, ast.KindActor, ast.KindTrait, ast.KindTypeDecl:
			name := decl.Child(0).Value
			qualified := alias + "." + name
			// The qualified and bare spellings name the same declaration.
			ctx.Register(qualified, name)
			ctx.Register(name, qualified)
		}
	}
	return pkg
}

// ModuleDiagnostic ties a diagnostic to the package and files it came from.
type ModuleDiagnostic struct {
	Package    string
	Files      []string
	Diagnostic typechecker.Diagnostic
}

// CheckProgram types every module in dependency order. Within a module the
// first fatal node stops that module's walk; remaining modules are still
// checked so a broken dependency does not hide its dependents' diagnostics.
func CheckProgram(program *Program) ([]ModuleDiagnostic, error) {
	if program == nil {
		return nil, fmt.Errorf("driver: program is nil")
	}
	var diags []ModuleDiagnostic
	for _, mod := range program.Modules {
		if mod == nil || mod.AST == nil {
			continue
		}
		checker := typechecker.New(program.Context)
		Walk(mod.AST, checker)
		for _, diag := range checker.Diagnostics() {
			diags = append(diags, ModuleDiagnostic{
				Package:    mod.Package,
				Files:      mod.Files,
				Diagnostic: diag,
			})
		}
	}
	return diags, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
