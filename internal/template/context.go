package template

import (
	"strings"
	"time"

	"github.com/pyforge/pyinit/internal/pyname"
)

// TemplateContext provides data for template rendering during project
// initialization. All fields are exported for use with text/template.
type TemplateContext struct {
	// Project
	ProjectName string // Display name, free text.
	PackageName string // Distribution slug, e.g. "my-app".

	// Derived identifiers
	PythonPackageName string // Import-safe module name, e.g. "my_app".
	PackageTitle      string // Display title, e.g. "My App".
	PackageUpper      string // Uppercased slug for log tags, e.g. "MY-APP".
	ClassName         string // CamelCase identifier for generated classes.

	// Metadata
	Description   string
	Author        string
	Email         string
	PythonVersion string // Minimum Python version, "3.<minor>".
	Structure     string // "default", "package", or "library".

	// Meta
	Version   string // pyinit version.
	CreatedAt string // ISO 8601 timestamp.
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with sensible defaults,
// then applies any provided options and derives the identifier fields.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		PythonVersion: pyname.DefaultPythonVersion,
		Structure:     "default",
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	if ctx.PackageName == "" {
		ctx.PackageName = pyname.Slugify(ctx.ProjectName)
	}
	ctx.PythonPackageName = pyname.Pythonize(ctx.PackageName)
	ctx.PackageTitle = pyname.TitleWords(ctx.PackageName)
	ctx.PackageUpper = strings.ToUpper(ctx.PackageName)
	ctx.ClassName = strings.ReplaceAll(ctx.PackageTitle, " ", "")

	return ctx
}

// WithProject sets the display name and package slug.
func WithProject(name, packageName string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
		c.PackageName = packageName
	}
}

// WithDescription sets the project description.
func WithDescription(desc string) ContextOption {
	return func(c *TemplateContext) {
		c.Description = desc
	}
}

// WithAuthor sets the author name and email.
func WithAuthor(name, email string) ContextOption {
	return func(c *TemplateContext) {
		c.Author = name
		c.Email = email
	}
}

// WithPythonVersion sets the minimum Python version.
func WithPythonVersion(version string) ContextOption {
	return func(c *TemplateContext) {
		c.PythonVersion = version
	}
}

// WithStructure sets the project structure variant.
func WithStructure(structure string) ContextOption {
	return func(c *TemplateContext) {
		c.Structure = structure
	}
}

// WithVersion sets the pyinit version stamp.
func WithVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = v
	}
}
