package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pyforge/pyinit/internal/config"
	"github.com/pyforge/pyinit/internal/defs"
	"github.com/pyforge/pyinit/internal/manifest"
	"github.com/pyforge/pyinit/internal/pyname"
	"github.com/pyforge/pyinit/internal/pyproject"
	"github.com/pyforge/pyinit/internal/template"
	"github.com/pyforge/pyinit/pkg/version"
)

// BootstrapFunc creates a pyproject.toml under root when none exists.
type BootstrapFunc func(ctx context.Context, root string) error

// StepReporter receives the title of each setup step as it starts.
type StepReporter func(step string)

// InitStepCount is the number of steps Init reports, for sizing
// progress indicators.
const InitStepCount = 7

// Initializer handles project scaffolding and setup.
type Initializer interface {
	// Init sets up a Python project with the given options.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)

	// SetReporter registers a callback invoked at the start of each
	// Init step. A nil reporter disables reporting.
	SetReporter(r StepReporter)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	manifestMgr manifest.Manager
	bootstrap   BootstrapFunc
	logger      *slog.Logger
	reporter    StepReporter
}

// NewInitializer creates an Initializer with the given dependencies.
// The default bootstrap runs the external "uv init" command.
func NewInitializer(manifestMgr manifest.Manager, logger *slog.Logger) Initializer {
	return NewInitializerWithBootstrap(manifestMgr, runBootstrapCommand, logger)
}

// NewInitializerWithBootstrap creates an Initializer with a custom bootstrap
// function. Tests use this to avoid invoking the external command.
func NewInitializerWithBootstrap(manifestMgr manifest.Manager, bootstrap BootstrapFunc, logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{
		manifestMgr: manifestMgr,
		bootstrap:   bootstrap,
		logger:      logger,
	}
}

// SetReporter registers the step callback.
func (i *projectInitializer) SetReporter(r StepReporter) {
	i.reporter = r
}

// step announces the next setup step.
func (i *projectInitializer) step(title string) {
	if i.reporter != nil {
		i.reporter(title)
	}
}

// Init sets up a Python project with the given options.
// Each setup step is independent: a failed pyproject edit or scaffold
// deployment is recorded as a warning and the remaining steps still run.
// Only a missing document that the bootstrap cannot create is fatal.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	opts.ProjectRoot = filepath.Clean(opts.ProjectRoot)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(opts.ProjectName) == "" {
		return nil, ErrProjectNameRequired
	}
	if opts.Structure == "" {
		opts.Structure = StructureDefault
	}
	if opts.PackageName == "" {
		opts.PackageName = pyname.Slugify(opts.ProjectName)
	}
	if v, ok := pyname.ValidatePythonVersion(opts.PythonVersion); !ok {
		if opts.PythonVersion != "" {
			i.logger.Warn("invalid python version, using default",
				"given", opts.PythonVersion, "using", v)
		}
		opts.PythonVersion = v
	}

	if IsInitialized(opts.ProjectRoot) && !opts.Force {
		return nil, ErrAlreadyInitialized
	}

	i.logger.Info("initializing project",
		"root", opts.ProjectRoot,
		"name", opts.ProjectName,
		"package", opts.PackageName,
		"structure", opts.Structure,
	)

	result := &InitResult{
		PackageName: opts.PackageName,
		Structure:   opts.Structure,
	}

	// Step 1: Bootstrap pyproject.toml when absent. This is the only
	// fatal step: without a document there is nothing to patch.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.step("Preparing pyproject.toml")
	pyprojectPath := filepath.Join(opts.ProjectRoot, defs.PyprojectTOML)
	if _, err := os.Stat(pyprojectPath); os.IsNotExist(err) {
		if err := i.bootstrap(ctx, opts.ProjectRoot); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBootstrapFailed, err)
		}
		result.BootstrapRan = true
	}

	// Step 2: Patch pyproject.toml fields.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.step("Updating project metadata")
	if err := i.patchPyproject(pyprojectPath, opts); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("pyproject update: %s", err))
		i.logger.Warn("pyproject update failed", "error", err)
	}

	// Step 3: Load the manifest used to track deployed files.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.step("Loading file manifest")
	if _, err := i.manifestMgr.Load(opts.ProjectRoot); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("manifest load: %s", err))
		i.logger.Warn("manifest load failed", "error", err)
	}

	tmplCtx := template.NewTemplateContext(
		template.WithProject(opts.ProjectName, opts.PackageName),
		template.WithDescription(opts.Description),
		template.WithAuthor(opts.Author, opts.Email),
		template.WithPythonVersion(opts.PythonVersion),
		template.WithStructure(string(opts.Structure)),
		template.WithVersion(version.GetVersion()),
	)

	// Step 4: Deploy the structure starter files. These own their
	// destinations and replace whatever the bootstrap left behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.step("Deploying project structure")
	if err := i.deployStructure(ctx, opts, tmplCtx, result); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("structure deployment: %s", err))
		i.logger.Warn("structure deployment failed", "error", err)
	}

	// Step 5: Deploy changelog tooling and the direnv example. Existing
	// files are left alone.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.step("Setting up changelog tooling")
	if err := i.deployCommon(ctx, opts, tmplCtx, result); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("changelog setup: %s", err))
		i.logger.Warn("changelog setup failed", "error", err)
	}

	// Step 6: Remove upstream template leftovers.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.step("Cleaning template leftovers")
	i.cleanupTemplateLeftovers(opts, result)

	// Step 7: Persist the manifest and drop the sentinel marker.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.step("Finalizing")
	if mf := i.manifestMgr.Manifest(); mf != nil {
		mf.Version = version.GetVersion()
		mf.DeployedAt = tmplCtx.CreatedAt
		if err := i.manifestMgr.Save(); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("manifest save: %s", err))
			i.logger.Warn("manifest save failed", "error", err)
		}
	}
	if err := writeSentinel(opts.ProjectRoot); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("sentinel: %s", err))
		i.logger.Warn("sentinel write failed", "error", err)
	}

	i.logger.Info("project initialized",
		"files", len(result.CreatedFiles),
		"warnings", len(result.Warnings),
	)

	return result, nil
}

// patchPyproject applies the ordered field edits to pyproject.toml.
func (i *projectInitializer) patchPyproject(path string, opts InitOptions) error {
	doc, err := pyproject.Load(path)
	if err != nil {
		return err
	}

	patcher := pyproject.NewPatcher(i.logger)
	doc = patcher.Apply(doc, pyproject.Fields{
		Name:            pyname.Slugify(opts.ProjectName),
		Description:     opts.Description,
		PythonVersion:   opts.PythonVersion,
		Author:          opts.Author,
		Email:           opts.Email,
		Package:         pyname.Pythonize(opts.PackageName),
		IncludePackages: opts.Structure == StructurePackage,
	})

	return pyproject.Save(path, doc)
}

// deployStructure writes the starter files for the chosen layout.
func (i *projectInitializer) deployStructure(ctx context.Context, opts InitOptions, tmplCtx *template.TemplateContext, result *InitResult) error {
	fsys, err := template.StructureTemplates(string(opts.Structure))
	if err != nil {
		return err
	}

	d := template.NewOverwritingDeployer(fsys, template.NewRenderer(fsys))
	if err := d.Deploy(ctx, opts.ProjectRoot, i.manifestMgr, tmplCtx); err != nil {
		return err
	}

	for _, name := range d.ListTemplates() {
		result.CreatedFiles = append(result.CreatedFiles,
			strings.ReplaceAll(name, "__package__", tmplCtx.PythonPackageName))
	}
	return nil
}

// deployCommon writes the structure-independent scaffold files.
func (i *projectInitializer) deployCommon(ctx context.Context, opts InitOptions, tmplCtx *template.TemplateContext, result *InitResult) error {
	fsys, err := template.CommonTemplates()
	if err != nil {
		return err
	}

	d := template.NewDeployerWithRenderer(fsys, template.NewRenderer(fsys))
	if err := d.Deploy(ctx, opts.ProjectRoot, i.manifestMgr, tmplCtx); err != nil {
		return err
	}

	result.CreatedFiles = append(result.CreatedFiles, d.ListTemplates()...)
	return nil
}

// cleanupTemplateLeftovers removes the upstream placeholder package and
// points the template's smoke test at the renamed package.
func (i *projectInitializer) cleanupTemplateLeftovers(opts InitOptions, result *InitResult) {
	leftover := filepath.Join(opts.ProjectRoot, config.TemplatePackageDir)
	if _, err := os.Stat(leftover); err == nil {
		if err := os.RemoveAll(leftover); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("remove template package: %s", err))
		} else {
			i.logger.Info("removed template package", "dir", config.TemplatePackageDir)
		}
	}

	testFile := filepath.Join(opts.ProjectRoot, "tests", "test_func.py")
	if _, err := os.Stat(testFile); err == nil {
		content := fmt.Sprintf(`"""Tests for the main functionality."""

from %s.func import random_sum


def test_random_sum():
    """Test random_sum function."""
    assert random_sum(1) < 101
    assert random_sum(100) < 200
`, pyname.Pythonize(opts.PackageName))
		if err := os.WriteFile(testFile, []byte(content), defs.FilePerm); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("rewrite test imports: %s", err))
		} else {
			result.CreatedFiles = append(result.CreatedFiles, filepath.Join("tests", "test_func.py"))
		}
	}
}

// writeSentinel drops the marker that flags the project as initialized.
func writeSentinel(root string) error {
	path := filepath.Join(root, defs.SentinelFile)
	if err := os.WriteFile(path, nil, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.SentinelFile, err)
	}
	return nil
}

// runBootstrapCommand invokes the external initializer ("uv init") in root.
func runBootstrapCommand(ctx context.Context, root string) error {
	cmd := exec.CommandContext(ctx, config.BootstrapCommand, config.BootstrapArgs...)
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s: %w: %s",
			config.BootstrapCommand, strings.Join(config.BootstrapArgs, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}
