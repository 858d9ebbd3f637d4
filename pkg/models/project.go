package models

import (
	"regexp"
	"strings"
)

// ProjectType identifies one of the supported project layouts.
type ProjectType string

const (
	ProjectTypePython  ProjectType = "python"
	ProjectTypeNode    ProjectType = "node"
	ProjectTypeBash    ProjectType = "bash"
	ProjectTypeFastAPI ProjectType = "fastapi"
	ProjectTypeNextJS  ProjectType = "nextjs"
	ProjectTypeGo      ProjectType = "go"
)

// ValidProjectTypes returns all supported project types in display order.
func ValidProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectTypePython,
		ProjectTypeNode,
		ProjectTypeBash,
		ProjectTypeFastAPI,
		ProjectTypeNextJS,
		ProjectTypeGo,
	}
}

// IsValid checks if the project type is a supported value.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypePython, ProjectTypeNode, ProjectTypeBash,
		ProjectTypeFastAPI, ProjectTypeNextJS, ProjectTypeGo:
		return true
	}
	return false
}

// SupportsVenv reports whether virtual environment creation applies to
// this project type.
func (t ProjectType) SupportsVenv() bool {
	return t == ProjectTypePython || t == ProjectTypeFastAPI
}

// SupportsNPMInstall reports whether npm install applies to this
// project type.
func (t ProjectType) SupportsNPMInstall() bool {
	return t == ProjectTypeNode || t == ProjectTypeNextJS
}

// License identifies one of the supported license texts.
type License string

const (
	// LicenseNone means no LICENSE file is written.
	LicenseNone   License = "none"
	LicenseMIT    License = "mit"
	LicenseApache License = "apache"
)

// ValidLicenses returns all accepted license values, including "none".
func ValidLicenses() []License {
	return []License{LicenseMIT, LicenseApache, LicenseNone}
}

// ParseLicense normalizes a user-supplied license string. The empty
// string and "none" both mean no license.
func ParseLicense(s string) (License, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LicenseNone, true
	case "mit":
		return LicenseMIT, true
	case "apache":
		return LicenseApache, true
	}
	return LicenseNone, false
}

// IsValid checks if the license is a supported value.
func (l License) IsValid() bool {
	switch l {
	case LicenseNone, LicenseMIT, LicenseApache:
		return true
	}
	return false
}

// None reports whether no license was chosen.
func (l License) None() bool {
	return l == LicenseNone || l == ""
}

// ID returns the identifier written into manifests such as
// package.json: the upper-cased license name, or "ISC" when no license
// was chosen.
func (l License) ID() string {
	if l.None() {
		return "ISC"
	}
	return strings.ToUpper(string(l))
}

// projectNamePattern accepts names usable as directory names: a leading
// alphanumeric followed by alphanumerics, hyphens or underscores.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidProjectName reports whether name is acceptable as a project
// directory name.
func ValidProjectName(name string) bool {
	return projectNamePattern.MatchString(name)
}

// ProjectConfig is the resolved, validated set of user choices for one
// generation run.
type ProjectConfig struct {
	Type       ProjectType `yaml:"project_type"`
	Name       string      `yaml:"project_name"`
	License    License     `yaml:"license"`
	Author     string      `yaml:"author"`
	Docker     bool        `yaml:"docker"`
	Venv       bool        `yaml:"venv"`
	NPMInstall bool        `yaml:"npm_install"`
	Git        bool        `yaml:"git"`
}

// PackageName returns the project name with hyphens replaced by
// underscores, for use as a Python module name.
func (c *ProjectConfig) PackageName() string {
	return strings.ReplaceAll(c.Name, "-", "_")
}

// Validate checks the configuration and returns a *ValidationErrors
// naming every offending field, or nil when the configuration is usable.
func (c *ProjectConfig) Validate() error {
	var errs ValidationErrors

	if c.Type == "" {
		errs.append(ValidationError{
			Field:   "project_type",
			Message: "project type is required",
			Wrapped: ErrMissingProjectType,
		})
	} else if !c.Type.IsValid() {
		errs.append(ValidationError{
			Field:   "project_type",
			Message: "must be one of: " + joinTypes(ValidProjectTypes()),
			Value:   string(c.Type),
			Wrapped: ErrUnknownProjectType,
		})
	}

	if c.Name == "" {
		errs.append(ValidationError{
			Field:   "project_name",
			Message: "project name is required",
			Wrapped: ErrMissingProjectName,
		})
	} else if !ValidProjectName(c.Name) {
		errs.append(ValidationError{
			Field:   "project_name",
			Message: "must start with a letter or digit and contain only letters, digits, hyphens and underscores",
			Value:   c.Name,
			Wrapped: ErrInvalidProjectName,
		})
	}

	if !c.License.IsValid() {
		errs.append(ValidationError{
			Field:   "license",
			Message: "must be one of: mit, apache, none",
			Value:   string(c.License),
			Wrapped: ErrUnknownLicense,
		})
	} else if !c.License.None() && c.Author == "" {
		errs.append(ValidationError{
			Field:   "author",
			Message: "author is required when a license is chosen",
			Wrapped: ErrMissingAuthor,
		})
	}

	if len(errs.Errors) == 0 {
		return nil
	}
	return &errs
}

func joinTypes(types []ProjectType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
