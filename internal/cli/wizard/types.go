// Package wizard provides the interactive question flow used by
// `ezlay create` when project type or name are missing from the
// command line.
package wizard

import "errors"

// WizardResult holds the user's selections from the create wizard.
type WizardResult struct {
	ProjectType string // Project layout: python, node, fastapi, nextjs, go, bash
	ProjectName string // Project directory name
	License     string // License choice: mit, apache, none
	Author      string // Author name for the license copyright line
	Docker      bool   // Generate Docker assets
	Venv        bool   // Create a Python virtual environment
	NPMInstall  bool   // Run npm install after generation
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
	ID          string                   // Unique identifier
	Type        QuestionType             // Select or Input
	Title       string                   // Question title
	Description string                   // Additional description
	Options     []Option                 // Options for select questions
	Default     string                   // Default value
	Required    bool                     // Whether the field is required
	Condition   func(*WizardResult) bool // Condition for showing this question
	Validate    func(string) error       // Extra validation for input questions
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
