// Package defs holds file names, directory names, and permission bits
// shared across pyinit packages.
package defs

import "io/fs"

// Common file names used across the project.
const (
	// PyprojectTOML is the Python project metadata file edited in place.
	PyprojectTOML = "pyproject.toml"

	// SentinelFile marks a project as already initialized.
	SentinelFile = ".project_initialized"

	// ManifestJSON is the pyinit manifest file that tracks deployed files.
	ManifestJSON = "manifest.json"

	// PyinitDir is the directory holding pyinit bookkeeping files.
	PyinitDir = ".pyinit"

	// EnvrcExample is the direnv example file created during initialization.
	EnvrcExample = ".envrc.example"

	// MainPy is the top-level Python entry point rewritten per structure.
	MainPy = "main.py"
)

// Changelog scaffolding paths.
const (
	// NewsfragmentsDir holds Towncrier news fragments.
	NewsfragmentsDir = "newsfragments"

	// ChangelogTemplateDir holds the Towncrier changelog template.
	ChangelogTemplateDir = "docs/changelog"

	// ChangelogTemplate is the Jinja template consumed by Towncrier.
	ChangelogTemplate = "_template.jinja"
)

// Permission bits for created files and directories.
const (
	// DirPerm is the mode for created directories.
	DirPerm fs.FileMode = 0o755

	// FilePerm is the mode for created regular files.
	FilePerm fs.FileMode = 0o644
)
