// Package models provides shared data models and types for ezlay.
//
// This package contains the project configuration, the supported
// project-type and license enums, and the validation errors used across
// the CLI, the wizard, and the generator.
//
// # Project Types
//
// Six project layouts are supported:
//   - Python: src layout with tests and packaging files
//   - Node.js: ESLint/Jest setup with src, tests and public
//   - Bash: scripts with shared helpers, logs and config
//   - FastAPI: app package with SQLAlchemy and Alembic scaffolding
//   - Next.js: TypeScript app router with Tailwind
//   - Go: standard cmd/internal/pkg layout with a Makefile
//
// Use [ProjectType] and its constants:
//
//	pt := models.ProjectTypePython
//	if pt.IsValid() {
//	    fmt.Println("valid type:", pt)
//	}
//
// # Validation
//
// [ProjectConfig.Validate] checks a resolved configuration and reports
// problems as a [*ValidationErrors] value whose entries name the offending
// field. Sentinel errors such as [ErrUnknownProjectType] are attached for
// errors.Is checks.
package models
