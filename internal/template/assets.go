package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the root of the embedded template tree.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

// CommonTemplates returns the structure-independent scaffold files
// (changelog tooling, news fragments, direnv example).
func CommonTemplates() (fs.FS, error) {
	return templateSubtree("common")
}

// StructureTemplates returns the starter files for one structure variant:
// "default", "package", or "library".
func StructureTemplates(structure string) (fs.FS, error) {
	return templateSubtree(structure)
}

func templateSubtree(name string) (fs.FS, error) {
	root, err := EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	sub, err := fs.Sub(root, name)
	if err != nil {
		return nil, fmt.Errorf("template subtree %q: %w", name, err)
	}
	return sub, nil
}
