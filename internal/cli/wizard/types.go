// Package wizard provides the interactive question flow for
// pyinit project initialization.
package wizard

import "errors"

// WizardResult holds the user's answers from the init wizard.
type WizardResult struct {
	ProjectName   string // Display name, free text (required)
	PackageName   string // Distribution slug
	Structure     string // Project layout: default, package, library
	PythonVersion string // Minimum Python version, "3.<minor>"
	Author        string // Author display name (optional)
	Email         string // Author email (optional)
	Description   string // One-line project description (optional)
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Select or Input
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Options for select questions
	Default     string       // Default value
	// DefaultFunc computes the default from earlier answers. Takes
	// precedence over Default when set. Questions run sequentially,
	// so every earlier answer is available by the time it is called.
	DefaultFunc func(*WizardResult) string
	Required    bool                     // Whether the field is required
	Validate    func(string) error       // Optional value validation
	Condition   func(*WizardResult) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
