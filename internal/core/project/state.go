package project

import (
	"os"
	"path/filepath"

	"github.com/pyforge/pyinit/internal/config"
	"github.com/pyforge/pyinit/internal/defs"
	"github.com/pyforge/pyinit/internal/pyname"
	"github.com/pyforge/pyinit/internal/pyproject"
)

// IsInitialized reports whether the project root has already been set up:
// either the sentinel marker exists, or pyproject.toml is present and its
// name no longer matches the upstream template placeholder.
func IsInitialized(root string) bool {
	if _, err := os.Stat(filepath.Join(root, defs.SentinelFile)); err == nil {
		return true
	}
	name := CurrentProjectName(root)
	return name != "" && name != config.TemplatePlaceholderName
}

// CurrentProjectName extracts the project name from the root's
// pyproject.toml, or an empty string when the file is absent or unreadable.
func CurrentProjectName(root string) string {
	doc, err := pyproject.Load(filepath.Join(root, defs.PyprojectTOML))
	if err != nil {
		return ""
	}
	return pyproject.ProjectName(doc)
}

// SuggestProjectName proposes a display name from the root directory's base
// name, with separators turned into spaces.
func SuggestProjectName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return pyname.TitleWords(base)
}
