package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsInitialized(t *testing.T) {
	t.Run("sentinel_present", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, ".project_initialized"), nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if !IsInitialized(root) {
			t.Error("sentinel should mark project initialized")
		}
	})

	t.Run("placeholder_name_is_uninitialized", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, templatePyproject)
		if IsInitialized(root) {
			t.Error("template placeholder should not count as initialized")
		}
	})

	t.Run("renamed_project_is_initialized", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, "[project]\nname = \"my-app\"\n")
		if !IsInitialized(root) {
			t.Error("renamed pyproject should count as initialized")
		}
	})

	t.Run("empty_dir", func(t *testing.T) {
		if IsInitialized(t.TempDir()) {
			t.Error("empty directory should not be initialized")
		}
	})
}

func TestCurrentProjectName(t *testing.T) {
	root := t.TempDir()
	if got := CurrentProjectName(root); got != "" {
		t.Errorf("missing pyproject should yield empty name, got %q", got)
	}
	writePyproject(t, root, templatePyproject)
	if got := CurrentProjectName(root); got != "python-repo-template" {
		t.Errorf("CurrentProjectName = %q", got)
	}
}

func TestSuggestProjectName(t *testing.T) {
	tests := []struct {
		root string
		want string
	}{
		{"/home/dev/my-cool-project", "My Cool Project"},
		{"/srv/data_pipeline", "Data Pipeline"},
		{"relative-dir", "Relative Dir"},
	}
	for _, tt := range tests {
		if got := SuggestProjectName(tt.root); got != tt.want {
			t.Errorf("SuggestProjectName(%q) = %q, want %q", tt.root, got, tt.want)
		}
	}
}
