package project

// Structure selects the generated project layout.
type Structure string

const (
	// StructureDefault is a simple script-based project.
	StructureDefault Structure = "default"
	// StructurePackage is a package-based project with a src/ layout.
	StructurePackage Structure = "package"
	// StructureLibrary is a library-style project with a full structure.
	StructureLibrary Structure = "library"
)

// ParseStructure validates a structure string.
func ParseStructure(s string) (Structure, error) {
	switch Structure(s) {
	case StructureDefault, StructurePackage, StructureLibrary:
		return Structure(s), nil
	}
	return "", ErrInvalidStructure
}

// InitOptions configures the project initialization.
type InitOptions struct {
	ProjectRoot   string // Absolute or relative path to the project root.
	ProjectName   string // Display name, free text.
	PackageName   string // Distribution slug; derived from ProjectName when empty.
	Structure     Structure
	PythonVersion string // Minimum Python version, "3.<minor>".
	Author        string // May be empty.
	Email         string // May be empty.
	Description   string // May be empty.
	Force         bool   // If true, reinitialize an already-initialized project.
}

// InitResult summarizes the outcome of project initialization.
type InitResult struct {
	CreatedFiles []string  // Files that were created or rewritten.
	PackageName  string    // Final distribution slug.
	Structure    Structure // Selected layout.
	BootstrapRan bool      // Whether the external bootstrap command ran.
	Warnings     []string  // Non-fatal warnings during initialization.
}
