package wizard

import (
	"fmt"
	"strings"

	"github.com/pyforge/pyinit/internal/config"
	"github.com/pyforge/pyinit/internal/core/project"
	"github.com/pyforge/pyinit/internal/pyname"
)

// DefaultQuestions builds the question sequence for `pyinit init`.
// The project root seeds the project-name default; later defaults are
// recomputed from earlier answers.
func DefaultQuestions(projectRoot string) []Question {
	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Human-readable name shown in pyproject.toml and docs",
			Default:     project.SuggestProjectName(projectRoot),
			Required:    true,
		},
		{
			ID:          "package_name",
			Type:        QuestionTypeInput,
			Title:       "Package name",
			Description: "Distribution name on PyPI (lowercase, hyphens allowed)",
			DefaultFunc: func(r *WizardResult) string {
				return pyname.Slugify(r.ProjectName)
			},
			Validate: validatePackageName,
		},
		{
			ID:          "structure",
			Type:        QuestionTypeSelect,
			Title:       "Project structure",
			Description: "Layout of the generated source tree",
			Default:     config.DefaultStructure,
			Options: []Option{
				{Label: "Default", Value: "default", Desc: "flat package next to main.py"},
				{Label: "Package", Value: "package", Desc: "src layout with a runnable package"},
				{Label: "Library", Value: "library", Desc: "src layout with core/utils modules and tests"},
			},
		},
		{
			ID:          "python_version",
			Type:        QuestionTypeInput,
			Title:       "Minimum Python version",
			Description: "Lower bound for requires-python",
			Default:     config.DefaultPythonVersion,
			Validate:    validatePythonVersion,
		},
		{
			ID:          "author",
			Type:        QuestionTypeInput,
			Title:       "Author name",
			Description: "Leave empty to keep the template authors block",
		},
		{
			ID:       "email",
			Type:     QuestionTypeInput,
			Title:    "Author email",
			Validate: validateEmail,
			Condition: func(r *WizardResult) bool {
				return r.Author != ""
			},
		},
		{
			ID:    "description",
			Type:  QuestionTypeInput,
			Title: "Description",
		},
	}
}

// validatePackageName rejects names that do not survive slugification.
func validatePackageName(v string) error {
	if slug := pyname.Slugify(v); slug != v {
		return fmt.Errorf("invalid package name, try %q", slug)
	}
	return nil
}

// validatePythonVersion rejects version strings that are not "3.<minor>".
func validatePythonVersion(v string) error {
	if _, ok := pyname.ValidatePythonVersion(v); !ok {
		return fmt.Errorf("expected a version like %q", config.DefaultPythonVersion)
	}
	return nil
}

// validateEmail performs a loose shape check.
func validateEmail(v string) error {
	at := strings.Index(v, "@")
	if at < 1 || at == len(v)-1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
