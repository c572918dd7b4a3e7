package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyforge/pyinit/internal/manifest"
)

const templatePyproject = `[project]
name = "python-repo-template"
version = "0.1.0"
description = "A template"
requires-python = ">=3.10"

[tool.towncrier]
package = "python_repo_template"
directory = "newsfragments"
`

// noBootstrap fails the test if the bootstrap command is invoked.
func noBootstrap(t *testing.T) BootstrapFunc {
	return func(context.Context, string) error {
		t.Fatal("bootstrap should not run when pyproject.toml exists")
		return nil
	}
}

func writePyproject(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, "pyproject.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitializerInit(t *testing.T) {
	t.Run("default_structure", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, templatePyproject)

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot:   root,
			ProjectName:   "My App",
			PythonVersion: "3.12",
			Author:        "Jane Doe",
			Email:         "jane@example.com",
			Description:   "An application",
			Structure:     StructureDefault,
		})
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if len(result.Warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", result.Warnings)
		}
		if result.PackageName != "my-app" {
			t.Errorf("PackageName = %q", result.PackageName)
		}

		doc, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			`name = "my-app"`,
			`description = "An application"`,
			`requires-python = ">=3.12"`,
			`package = "my_app"`,
		} {
			if !strings.Contains(string(doc), want) {
				t.Errorf("pyproject missing %q:\n%s", want, doc)
			}
		}

		for _, rel := range []string{
			"my_app/__init__.py",
			"my_app/main.py",
			"main.py",
			"newsfragments/README.md",
			"docs/changelog/_template.jinja",
			".envrc.example",
			".project_initialized",
			".pyinit/manifest.json",
		} {
			if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}
	})

	t.Run("package_structure_src_layout", func(t *testing.T) {
		root := t.TempDir()
		// No bracketed values inside [project], so the packages key can
		// be inserted at the section end.
		writePyproject(t, root, "[project]\nname = \"python-repo-template\"\ndescription = \"x\"\n\n[tool.towncrier]\npackage = \"python_repo_template\"\n")

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "Data Pipeline",
			Structure:   StructurePackage,
		})
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if result.Structure != StructurePackage {
			t.Errorf("Structure = %q", result.Structure)
		}

		// The include target must name the directory the deployer
		// creates, so a hyphenated slug is written import-safe.
		doc, _ := os.ReadFile(filepath.Join(root, "pyproject.toml"))
		if !strings.Contains(string(doc), `packages = [{include = "data_pipeline"}]`) {
			t.Errorf("packages include not inserted:\n%s", doc)
		}
		if !strings.Contains(string(doc), `package = "data_pipeline"`) {
			t.Errorf("towncrier package not aligned with module dir:\n%s", doc)
		}

		for _, rel := range []string{
			"src/data_pipeline/__init__.py",
			"src/data_pipeline/__main__.py",
			"src/data_pipeline/utils.py",
		} {
			if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}
	})

	t.Run("library_structure", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, templatePyproject)

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		if _, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "mylib",
			Structure:   StructureLibrary,
		}); err != nil {
			t.Fatalf("Init error: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(root, "src", "mylib", "core", "api.py"))
		if err != nil {
			t.Fatalf("library api missing: %v", err)
		}
		if !strings.Contains(string(data), "class MylibAPI:") {
			t.Errorf("api class not rendered:\n%s", data)
		}
		if _, err := os.Stat(filepath.Join(root, "tests", "test_api.py")); err != nil {
			t.Errorf("library test missing: %v", err)
		}

		helpers, err := os.ReadFile(filepath.Join(root, "src", "mylib", "utils", "helpers.py"))
		if err != nil {
			t.Fatalf("library helpers missing: %v", err)
		}
		if !strings.Contains(string(helpers), `[MYLIB]`) {
			t.Errorf("log tag not uppercased:\n%s", helpers)
		}
	})

	t.Run("bootstrap_runs_when_document_missing", func(t *testing.T) {
		root := t.TempDir()
		bootstrap := func(_ context.Context, dir string) error {
			return os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(templatePyproject), 0o644)
		}

		init := NewInitializerWithBootstrap(manifest.NewManager(), bootstrap, nil)
		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "Fresh",
		})
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if !result.BootstrapRan {
			t.Error("BootstrapRan = false")
		}
	})

	t.Run("bootstrap_failure_is_fatal", func(t *testing.T) {
		root := t.TempDir()
		bootstrap := func(context.Context, string) error {
			return fmt.Errorf("command not found")
		}

		init := NewInitializerWithBootstrap(manifest.NewManager(), bootstrap, nil)
		_, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "Fresh",
		})
		if !errors.Is(err, ErrBootstrapFailed) {
			t.Errorf("expected ErrBootstrapFailed, got %v", err)
		}
	})

	t.Run("already_initialized_without_force", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, templatePyproject)
		if err := os.WriteFile(filepath.Join(root, ".project_initialized"), nil, 0o644); err != nil {
			t.Fatal(err)
		}

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		_, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "My App",
		})
		if !errors.Is(err, ErrAlreadyInitialized) {
			t.Errorf("expected ErrAlreadyInitialized, got %v", err)
		}

		// Force reinitializes.
		if _, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "My App",
			Force:       true,
		}); err != nil {
			t.Errorf("forced Init error: %v", err)
		}
	})

	t.Run("missing_project_name", func(t *testing.T) {
		init := NewInitializerWithBootstrap(manifest.NewManager(), nil, nil)
		_, err := init.Init(context.Background(), InitOptions{ProjectRoot: t.TempDir()})
		if !errors.Is(err, ErrProjectNameRequired) {
			t.Errorf("expected ErrProjectNameRequired, got %v", err)
		}
	})

	t.Run("invalid_python_version_falls_back", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, templatePyproject)

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		if _, err := init.Init(context.Background(), InitOptions{
			ProjectRoot:   root,
			ProjectName:   "My App",
			PythonVersion: "not-a-version",
		}); err != nil {
			t.Fatalf("Init error: %v", err)
		}

		doc, _ := os.ReadFile(filepath.Join(root, "pyproject.toml"))
		if !strings.Contains(string(doc), `requires-python = ">=3.12"`) {
			t.Errorf("fallback version not applied:\n%s", doc)
		}
	})

	t.Run("template_leftovers_removed", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, templatePyproject)
		if err := os.MkdirAll(filepath.Join(root, "python_repo_template"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Join(root, "tests"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, "tests", "test_func.py"), []byte("from python_repo_template.func import random_sum\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		if _, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "My App",
		}); err != nil {
			t.Fatalf("Init error: %v", err)
		}

		if _, err := os.Stat(filepath.Join(root, "python_repo_template")); !os.IsNotExist(err) {
			t.Error("template package dir not removed")
		}
		data, _ := os.ReadFile(filepath.Join(root, "tests", "test_func.py"))
		if !strings.Contains(string(data), "from my_app.func import random_sum") {
			t.Errorf("test imports not rewritten:\n%s", data)
		}
	})

	t.Run("unreadable_pyproject_warns_and_continues", func(t *testing.T) {
		root := t.TempDir()
		// A directory at the document path makes every read and write
		// fail while still counting as "present" for the bootstrap.
		if err := os.MkdirAll(filepath.Join(root, "pyproject.toml"), 0o755); err != nil {
			t.Fatal(err)
		}

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "My App",
		})
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}

		var found bool
		for _, w := range result.Warnings {
			if strings.Contains(w, "pyproject update") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a pyproject update warning, got %v", result.Warnings)
		}

		// The remaining steps still ran.
		for _, rel := range []string{
			"main.py",
			"my_app/__init__.py",
			".project_initialized",
		} {
			if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}
	})

	t.Run("readonly_pyproject_warns_and_continues", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("file permissions are not enforced for root")
		}
		root := t.TempDir()
		path := writePyproject(t, root, templatePyproject)
		if err := os.Chmod(path, 0o444); err != nil {
			t.Fatal(err)
		}

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "My App",
		})
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}

		var found bool
		for _, w := range result.Warnings {
			if strings.Contains(w, "pyproject update") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a pyproject update warning, got %v", result.Warnings)
		}
		if _, err := os.Stat(filepath.Join(root, ".project_initialized")); err != nil {
			t.Errorf("sentinel missing after warning: %v", err)
		}
	})

	t.Run("reporter_receives_each_step", func(t *testing.T) {
		root := t.TempDir()
		writePyproject(t, root, templatePyproject)

		init := NewInitializerWithBootstrap(manifest.NewManager(), noBootstrap(t), nil)
		var steps []string
		init.SetReporter(func(step string) {
			steps = append(steps, step)
		})

		if _, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			ProjectName: "My App",
		}); err != nil {
			t.Fatalf("Init error: %v", err)
		}

		if len(steps) != InitStepCount {
			t.Errorf("got %d steps, want %d: %v", len(steps), InitStepCount, steps)
		}
		if steps[0] != "Preparing pyproject.toml" {
			t.Errorf("first step = %q", steps[0])
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		init := NewInitializerWithBootstrap(manifest.NewManager(), nil, nil)
		_, err := init.Init(ctx, InitOptions{ProjectRoot: t.TempDir(), ProjectName: "x"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestParseStructure(t *testing.T) {
	for _, valid := range []string{"default", "package", "library"} {
		if _, err := ParseStructure(valid); err != nil {
			t.Errorf("ParseStructure(%q) error: %v", valid, err)
		}
	}
	if _, err := ParseStructure("monorepo"); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
}
