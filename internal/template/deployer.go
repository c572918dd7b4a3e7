package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyforge/pyinit/internal/defs"
	"github.com/pyforge/pyinit/internal/manifest"
)

// packageDirToken is the placeholder directory name in embedded template
// trees. It is rewritten to the project's Python package name at deploy time.
const packageDirToken = "__package__"

// Deployer extracts starter files from an embedded filesystem and writes
// them under a project root, tracking each file in the manifest.
type Deployer interface {
	// Deploy writes every file in the backing FS to projectRoot. Files
	// ending in .tmpl are rendered with tmplCtx and saved without the
	// suffix; the __package__ path segment is replaced with the context's
	// Python package name.
	Deploy(ctx context.Context, projectRoot string, m manifest.Manager, tmplCtx *TemplateContext) error

	// ListTemplates returns the deployment target paths of all embedded files.
	ListTemplates() []string
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys      fs.FS
	renderer  Renderer // If set, .tmpl files are rendered with TemplateContext.
	overwrite bool     // If true, existing files are replaced without a manifest check.
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys}
}

// NewDeployerWithRenderer creates a Deployer that renders .tmpl files using
// the given Renderer.
func NewDeployerWithRenderer(fsys fs.FS, renderer Renderer) Deployer {
	return &deployer{fsys: fsys, renderer: renderer}
}

// NewOverwritingDeployer creates a rendering Deployer that replaces existing
// files. Used for the structure starter files, which own their destinations.
func NewOverwritingDeployer(fsys fs.FS, renderer Renderer) Deployer {
	return &deployer{fsys: fsys, renderer: renderer, overwrite: true}
}

// Deploy walks the backing filesystem and writes every file to projectRoot.
func (d *deployer) Deploy(ctx context.Context, projectRoot string, m manifest.Manager, tmplCtx *TemplateContext) error {
	projectRoot = filepath.Clean(projectRoot)

	return fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == "." || entry.IsDir() {
			return nil
		}

		destRelPath := destPath(path, tmplCtx)
		if err := validateDeployPath(projectRoot, destRelPath); err != nil {
			return err
		}

		var content []byte
		if strings.HasSuffix(path, ".tmpl") && d.renderer != nil && tmplCtx != nil {
			rendered, renderErr := d.renderer.Render(path, tmplCtx)
			if renderErr != nil {
				return fmt.Errorf("template render %q: %w", path, renderErr)
			}
			content = rendered
		} else {
			raw, readErr := fs.ReadFile(d.fsys, path)
			if readErr != nil {
				return fmt.Errorf("template read %q: %w", path, readErr)
			}
			content = raw
		}

		destFull := filepath.Join(projectRoot, filepath.FromSlash(destRelPath))

		// Existing file protection: outside overwrite mode, a file already
		// present at the destination is left alone. Untracked files are
		// recorded as user_created so later runs keep respecting them.
		if !d.overwrite {
			if _, statErr := os.Stat(destFull); statErr == nil {
				if entry, found := m.GetEntry(destRelPath); found {
					if entry.Provenance == manifest.UserModified || entry.Provenance == manifest.UserCreated {
						return nil
					}
				} else {
					_ = m.Track(destRelPath, manifest.UserCreated, manifest.HashBytes(content))
					return nil
				}
			}
		}

		if err := os.MkdirAll(filepath.Dir(destFull), defs.DirPerm); err != nil {
			return fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(destFull), err)
		}
		if err := os.WriteFile(destFull, content, defs.FilePerm); err != nil {
			return fmt.Errorf("template deploy write %q: %w", destFull, err)
		}

		if err := m.Track(destRelPath, manifest.TemplateManaged, manifest.HashBytes(content)); err != nil {
			return fmt.Errorf("template deploy track %q: %w", destRelPath, err)
		}

		return nil
	})
}

// ListTemplates returns sorted deployment target paths of all files in the
// backing FS, with the .tmpl suffix stripped and the package token intact.
func (d *deployer) ListTemplates() []string {
	var list []string

	_ = fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors during listing
		}
		if path == "." || entry.IsDir() {
			return nil
		}
		list = append(list, strings.TrimSuffix(path, ".tmpl"))
		return nil
	})

	return list
}

// destPath maps a template path to its deployment target: the .tmpl suffix
// is stripped and the __package__ segment replaced with the Python package name.
func destPath(path string, tmplCtx *TemplateContext) string {
	dest := strings.TrimSuffix(path, ".tmpl")
	if tmplCtx != nil && tmplCtx.PythonPackageName != "" {
		dest = strings.ReplaceAll(dest, packageDirToken, tmplCtx.PythonPackageName)
	}
	return dest
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
