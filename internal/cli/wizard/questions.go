package wizard

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/ezlay/ezlay/internal/config"
	"github.com/ezlay/ezlay/pkg/models"
)

// DefaultQuestions returns the standard question set for `ezlay create`.
// Config defaults pre-select license, author and docker answers; baseDir
// is where the project directory would be created, used to reject names
// that already exist there.
func DefaultQuestions(defaults *config.Defaults, baseDir string) []Question {
	return []Question{
		{
			ID:          "project_type",
			Type:        QuestionTypeSelect,
			Title:       "What would you like to create?",
			Description: "Pick the project layout to generate.",
			Options: []Option{
				{Label: "Python", Value: "python", Desc: "src layout with pytest and a Makefile"},
				{Label: "Node.js", Value: "node", Desc: "npm package with src/ and tests/"},
				{Label: "FastAPI", Value: "fastapi", Desc: "API service with app/ modules and alembic"},
				{Label: "Next.js", Value: "nextjs", Desc: "app router site in TypeScript"},
				{Label: "Go", Value: "go", Desc: "module with cmd/ and internal/"},
				{Label: "Bash", Value: "bash", Desc: "script project with scripts/ and logs/"},
			},
			Required: true,
		},
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Choose a project name:",
			Description: "Used as the directory name.",
			Default:     "my-app",
			Required:    true,
			Validate:    validateProjectName(baseDir),
		},
		{
			ID:    "license",
			Type:  QuestionTypeSelect,
			Title: "Choose a license:",
			Options: []Option{
				{Label: "MIT License", Value: "mit"},
				{Label: "Apache License 2.0", Value: "apache"},
				{Label: "No license", Value: "none"},
			},
			Default: licenseDefault(defaults),
		},
		{
			ID:          "author",
			Type:        QuestionTypeInput,
			Title:       "Author name for the license:",
			Description: "Written into the LICENSE copyright line.",
			Default:     authorDefault(defaults),
			Required:    true,
			Condition: func(r *WizardResult) bool {
				return r.License != "" && r.License != string(models.LicenseNone)
			},
		},
		{
			ID:          "docker",
			Type:        QuestionTypeSelect,
			Title:       "Add Docker support?",
			Description: "Writes a Dockerfile, docker-compose.yml and .dockerignore.",
			Options:     yesNoOptions(),
			Default:     yesNoDefault(defaults != nil && defaults.Docker != nil && *defaults.Docker),
		},
		{
			ID:          "venv",
			Type:        QuestionTypeSelect,
			Title:       "Create a virtual environment?",
			Description: "Runs python -m venv venv inside the new project.",
			Options:     yesNoOptions(),
			Default:     "false",
			Condition: func(r *WizardResult) bool {
				return models.ProjectType(r.ProjectType).SupportsVenv()
			},
		},
		{
			ID:          "npm_install",
			Type:        QuestionTypeSelect,
			Title:       "Run npm install?",
			Description: "Installs dependencies into the new project.",
			Options:     yesNoOptions(),
			Default:     "false",
			Condition: func(r *WizardResult) bool {
				return models.ProjectType(r.ProjectType).SupportsNPMInstall()
			},
		},
	}
}

// validateProjectName returns an input validator that enforces the
// project name shape and rejects names whose target path is already
// occupied. An empty existing directory is fine; generation fills it.
func validateProjectName(baseDir string) func(string) error {
	return func(name string) error {
		if !models.ValidProjectName(name) {
			return errors.New("use letters, digits, hyphens and underscores, starting with a letter or digit")
		}
		target := filepath.Join(baseDir, name)
		info, err := os.Stat(target)
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return fmt.Errorf("%q already exists", name)
		}
		if entries, err := os.ReadDir(target); err == nil && len(entries) > 0 {
			return fmt.Errorf("directory %q is not empty", name)
		}
		return nil
	}
}

// licenseDefault picks the pre-selected license option.
func licenseDefault(defaults *config.Defaults) string {
	if defaults != nil && defaults.License != "" {
		if l, ok := models.ParseLicense(defaults.License); ok {
			return string(l)
		}
	}
	return string(models.LicenseMIT)
}

// authorDefault picks the pre-filled author name: the configured
// default when set, otherwise the OS user.
func authorDefault(defaults *config.Defaults) string {
	if defaults != nil && defaults.Author != "" {
		return defaults.Author
	}
	if u, err := user.Current(); err == nil {
		if u.Name != "" {
			return u.Name
		}
		return u.Username
	}
	return os.Getenv("USER")
}

func yesNoOptions() []Option {
	return []Option{
		{Label: "Yes", Value: "true"},
		{Label: "No", Value: "false"},
	}
}

func yesNoDefault(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
