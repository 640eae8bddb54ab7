package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
)

// Registry resolves template names. Built-ins win over definition files;
// among files the first root containing the name wins.
type Registry struct {
	roots    []string
	builtins bool
}

// NewRegistry creates a registry over the built-in templates and roots.
func NewRegistry(roots []string) *Registry {
	return &Registry{roots: roots, builtins: true}
}

// Roots returns the search roots in priority order.
func (r *Registry) Roots() []string {
	return r.roots
}

// DefaultRoots returns the per-installation and per-user template roots:
// <executable dir>/templates and ~/.gur/templates.
func DefaultRoots() []string {
	var roots []string
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Join(filepath.Dir(exe), "templates"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".gur", "templates"))
	}
	return roots
}

// SplitRootList splits a GUR_TEMPLATES_PATH style value, dropping empty entries.
func SplitRootList(value string) []string {
	var roots []string
	for _, p := range strings.Split(value, string(os.PathListSeparator)) {
		if p = strings.TrimSpace(p); p != "" {
			roots = append(roots, p)
		}
	}
	return roots
}

// Lookup finds the template called name.
func (r *Registry) Lookup(name string) (*Template, error) {
	if r.builtins && isBuiltin(name) {
		return loadBuiltin(name)
	}

	for _, root := range r.roots {
		path := filepath.Join(root, name+DefinitionExt)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		output.Debug("template found", "name", name, "path", path)
		return LoadFile(path)
	}

	return nil, oerrors.NewNotFoundError(
		fmt.Sprintf("template %s not found", name), "",
		"run 'gur template list' to see available templates")
}

// List returns every resolvable template: built-ins first, then definition
// files sorted by name within each root. Names shadowed by an earlier
// source are omitted, as are definitions that fail to load.
func (r *Registry) List() []*Template {
	seen := make(map[string]struct{})
	var result []*Template

	if r.builtins {
		for _, name := range BuiltinNames {
			t, err := loadBuiltin(name)
			if err != nil {
				output.Warn("skipping built-in template", "name", name, "err", err)
				continue
			}
			seen[name] = struct{}{}
			result = append(result, t)
		}
	}

	for _, root := range r.roots {
		names, paths := definitionFiles(root)
		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}
			t, err := LoadFile(paths[name])
			if err != nil {
				output.Debug("skipping template", "path", paths[name], "err", err)
				continue
			}
			seen[name] = struct{}{}
			result = append(result, t)
		}
	}
	return result
}
