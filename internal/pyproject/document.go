package pyproject

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pyforge/pyinit/internal/defs"
)

// Fields carries the ordered set of edits applied to a scaffold document.
// Name and Package are identifier-safe slugs; the raw display name never
// reaches the document.
type Fields struct {
	Name            string // project name slug
	Description     string
	PythonVersion   string // minimum version, "3.<minor>"
	Author          string // skipped when empty
	Email           string
	Package         string // import-safe module name; must match the deployed package directory
	IncludePackages bool   // emit a packages block (package structure only)
}

// Patcher applies an ordered edit sequence to pyproject.toml documents and
// logs a before/after diagnostic per field. Each edit is a stateless text
// transform; the only state threaded between them is the document itself.
type Patcher struct {
	logger *slog.Logger
}

// NewPatcher creates a Patcher. A nil logger disables diagnostics.
func NewPatcher(logger *slog.Logger) *Patcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Patcher{logger: logger}
}

// Apply runs the edit sequence over doc and returns the updated text.
// Fields whose pattern is absent from the document are skipped.
func (p *Patcher) Apply(doc string, f Fields) string {
	doc = p.edit(doc, "name", func(d string) string {
		return SetScalar(d, "name", f.Name)
	})
	doc = p.edit(doc, "description", func(d string) string {
		return SetScalar(d, "description", f.Description)
	})
	doc = p.edit(doc, "requires-python", func(d string) string {
		return SetRequiresPython(d, f.PythonVersion)
	})
	if f.Author != "" {
		doc = p.edit(doc, "authors", func(d string) string {
			return SetAuthors(d, f.Author, f.Email)
		})
	}
	doc = p.edit(doc, "package", func(d string) string {
		return SetToolPackage(d, f.Package)
	})
	if f.IncludePackages {
		doc = p.edit(doc, "packages", func(d string) string {
			return SetPackagesInclude(d, f.Package)
		})
	}
	return doc
}

// edit applies a single transform and logs whether it changed the document.
func (p *Patcher) edit(doc, field string, fn func(string) string) string {
	updated := fn(doc)
	if updated == doc {
		p.logger.Debug("field unchanged", "field", field)
	} else {
		p.logger.Info("field updated", "field", field)
	}
	return updated
}

// Load reads the whole document into memory.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Save overwrites the document in a single whole-file write.
// No partial edits are ever persisted.
func Save(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
