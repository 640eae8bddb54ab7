package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

// DefinitionExt is the file extension of template definitions.
const DefinitionExt = ".toml"

// SharedDirName is the directory, next to a definition file, whose files
// are copied into every generated project.
const SharedDirName = "shared"

// definition is the on-disk TOML shape:
//
//	[args.targetJvm]
//	default = "17"
//
//	[args.kotlin]
//	description = "Kotlin version"
//	default = "1.9.22"
//
//	[[files]]
//	path = "src/main/kotlin/$(packagePath)/Main.kt"
//	content = "package $(package)"
type definition struct {
	Args  map[string]ArgInfo `toml:"args"`
	Files []fileDefinition   `toml:"files"`
}

type fileDefinition struct {
	Path    string `toml:"path"`
	Content string `toml:"content"`
}

// reservedArgs cannot be declared by a template.
var reservedArgs = map[string]struct{}{
	ArgGroup: {}, ArgArtifact: {}, ArgVersion: {}, ArgPackage: {},
	ArgPackagePath: {}, ArgTargetJvmJava: {}, ArgDollar: {},
}

// ParseDefinition decodes a TOML template definition. Argument order
// follows the document.
func ParseDefinition(name, source string, data []byte) (*Template, error) {
	var def definition
	md, err := toml.Decode(string(data), &def)
	if err != nil {
		return nil, oerrors.NewTemplateError(fmt.Sprintf("parsing template %s: %v", name, err), source)
	}

	t := &Template{Name: name, Source: source}

	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "args" {
			continue
		}
		argName := key[1]
		info := def.Args[argName]

		if argName == ArgTargetJvm {
			t.TargetJvm = &info
			continue
		}
		if _, reserved := reservedArgs[argName]; reserved {
			return nil, oerrors.NewTemplateError(
				fmt.Sprintf("template %s declares reserved argument %q", name, argName), source)
		}
		t.Args = append(t.Args, ArgSpec{Name: argName, ArgInfo: info})
	}

	for i, f := range def.Files {
		if f.Path == "" {
			return nil, oerrors.NewTemplateError(
				fmt.Sprintf("template %s: file #%d has no path", name, i+1), source)
		}
		t.Files = append(t.Files, File{Path: Placeholders(f.Path), Content: Placeholders(f.Content)})
	}

	return t, nil
}

// LoadFile reads a definition file together with its shared files.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), DefinitionExt)
	t, err := ParseDefinition(name, path, data)
	if err != nil {
		return nil, err
	}

	t.Shared, err = loadShared(filepath.Join(filepath.Dir(path), SharedDirName))
	if err != nil {
		return nil, err
	}
	return t, nil
}

// loadShared reads the regular files directly inside dir. A missing
// directory yields no files.
func loadShared(dir string) ([]SharedFile, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading shared files: %w", err)
	}

	var shared []SharedFile
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading shared file %s: %w", e.Name(), err)
		}
		shared = append(shared, SharedFile{Name: e.Name(), Data: data})
	}
	return shared, nil
}

// definitionFiles lists the template names defined directly inside root,
// sorted, mapped to their definition path.
func definitionFiles(root string) ([]string, map[string]string) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil
	}

	paths := make(map[string]string)
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != DefinitionExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), DefinitionExt)
		paths[name] = filepath.Join(root, e.Name())
		names = append(names, name)
	}
	sort.Strings(names)
	return names, paths
}
