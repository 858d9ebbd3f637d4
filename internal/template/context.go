package template

import (
	"strings"
	"time"

	"github.com/ezlay/ezlay/pkg/models"
)

// TemplateContext provides data for template rendering during project
// generation. All fields are exported for use with Go's text/template
// package; the same context renders file bodies, templated path
// segments, and license texts.
type TemplateContext struct {
	// ProjectName is the project directory name, substituted verbatim.
	ProjectName string

	// PackageName is the project name with hyphens replaced by
	// underscores, usable as a Python module or import name.
	PackageName string

	// Author is the license/package author.
	Author string

	// Year is the copyright year written into license texts.
	Year int

	// LicenseID is the identifier written into manifests such as
	// package.json ("MIT", "APACHE", or "ISC" when no license chosen).
	LicenseID string

	// Version is the generator version, for generated-by notes.
	Version string
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with the current year,
// then applies any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		Year:      time.Now().Year(),
		LicenseID: models.LicenseNone.ID(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.PackageName == "" {
		ctx.PackageName = strings.ReplaceAll(ctx.ProjectName, "-", "_")
	}
	return ctx
}

// WithProject sets the project name and derives the package name.
func WithProject(name string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
		c.PackageName = strings.ReplaceAll(name, "-", "_")
	}
}

// WithAuthor sets the author name.
func WithAuthor(name string) ContextOption {
	return func(c *TemplateContext) {
		c.Author = name
	}
}

// WithLicense sets the license identifier.
func WithLicense(l models.License) ContextOption {
	return func(c *TemplateContext) {
		c.LicenseID = l.ID()
	}
}

// WithYear overrides the copyright year.
func WithYear(year int) ContextOption {
	return func(c *TemplateContext) {
		c.Year = year
	}
}

// WithVersion sets the generator version.
func WithVersion(version string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = version
	}
}
