// Package config provides default values and the answers-file loader used
// for non-interactive initialization runs.
package config

// Default value constants to avoid magic strings.
const (
	// DefaultPythonVersion is used when no version is supplied or the
	// supplied one is malformed.
	DefaultPythonVersion = "3.12"

	// DefaultStructure is the structure chosen when none is specified.
	DefaultStructure = "default"

	// TemplatePlaceholderName is the project name carried by the upstream
	// repository template. A pyproject.toml still holding it is treated
	// as uninitialized.
	TemplatePlaceholderName = "python-repo-template"

	// TemplatePackageDir is the placeholder package directory removed
	// during initialization.
	TemplatePackageDir = "python_repo_template"

	// BootstrapCommand is the external initializer invoked when no
	// pyproject.toml exists yet.
	BootstrapCommand = "uv"
)

// BootstrapArgs are the arguments passed to BootstrapCommand.
var BootstrapArgs = []string{"init"}
