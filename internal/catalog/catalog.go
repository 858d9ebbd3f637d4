package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ezlay/ezlay/pkg/models"
)

// ErrUnsupportedType indicates a project type with no registered
// template spec.
var ErrUnsupportedType = errors.New("catalog: unsupported project type")

//go:embed all:templates
var embeddedFS embed.FS

// Spec is the static template definition for one project type: the
// directories to create (in order), the embedded file tree to deploy,
// and the path of the next-steps guidance. Directory and file paths may
// contain template tokens (e.g. "src/{{.PackageName}}") that the
// generator renders with the project context.
type Spec struct {
	Type models.ProjectType

	// Dirs are created explicitly, in order, before files are deployed.
	// Some stay empty (e.g. docs/); the rest receive files.
	Dirs []string

	// Files is the embedded template subtree for this type. Entries
	// ending in .tmpl are rendered; everything else is copied verbatim.
	Files fs.FS

	nextSteps string
}

// specDef is the registration record for one project type.
type specDef struct {
	dirs      []string
	nextSteps string
}

var registry = map[models.ProjectType]specDef{
	models.ProjectTypePython: {
		dirs:      []string{"src/{{.PackageName}}", "tests", "docs"},
		nextSteps: "templates/nextsteps/python.md",
	},
	models.ProjectTypeNode: {
		dirs:      []string{"src", "tests", "public"},
		nextSteps: "templates/nextsteps/node.md",
	},
	models.ProjectTypeBash: {
		dirs:      []string{"scripts", "tests", "docs", "logs", "config"},
		nextSteps: "templates/nextsteps/bash.md",
	},
	models.ProjectTypeFastAPI: {
		dirs: []string{
			"app", "app/api", "app/core", "app/db",
			"app/models", "app/schemas", "tests", "alembic",
		},
		nextSteps: "templates/nextsteps/fastapi.md",
	},
	models.ProjectTypeNextJS: {
		dirs:      []string{"src", "src/app", "src/components", "src/lib", "public", "tests"},
		nextSteps: "templates/nextsteps/nextjs.md",
	},
	models.ProjectTypeGo: {
		dirs:      []string{"cmd/{{.ProjectName}}", "internal", "pkg"},
		nextSteps: "templates/nextsteps/go.md",
	},
}

// Lookup returns the template spec for the given project type, or
// ErrUnsupportedType when the type is not registered.
func Lookup(t models.ProjectType) (*Spec, error) {
	def, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}
	sub, err := fs.Sub(embeddedFS, "templates/"+string(t))
	if err != nil {
		return nil, fmt.Errorf("catalog: open templates for %q: %w", t, err)
	}
	return &Spec{
		Type:      t,
		Dirs:      def.dirs,
		Files:     sub,
		nextSteps: def.nextSteps,
	}, nil
}

// NextSteps returns the next-steps markdown for the spec's type, with
// the Docker section appended when docker is set. Template tokens
// ({{.ProjectName}}) are left for the caller to render.
func (s *Spec) NextSteps(docker bool) (string, error) {
	body, err := embeddedFS.ReadFile(s.nextSteps)
	if err != nil {
		return "", fmt.Errorf("catalog: read next steps for %q: %w", s.Type, err)
	}
	if docker {
		dockerBody, err := embeddedFS.ReadFile("templates/nextsteps/docker.md")
		if err != nil {
			return "", fmt.Errorf("catalog: read docker next steps: %w", err)
		}
		return string(body) + "\n" + string(dockerBody), nil
	}
	return string(body), nil
}

// DockerAssets returns the embedded Docker asset tree (Dockerfile,
// docker-compose.yml, .dockerignore) for the given project type.
func DockerAssets(t models.ProjectType) (fs.FS, error) {
	if _, ok := registry[t]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}
	sub, err := fs.Sub(embeddedFS, "templates/docker/"+string(t))
	if err != nil {
		return nil, fmt.Errorf("catalog: open docker assets for %q: %w", t, err)
	}
	return sub, nil
}

// Licenses returns the embedded license template tree. Template names
// follow LicenseTemplateName.
func Licenses() fs.FS {
	sub, err := fs.Sub(embeddedFS, "templates/licenses")
	if err != nil {
		// The licenses directory is embedded at build time; failing to
		// open it is a programming error.
		panic("catalog: licenses subtree missing: " + err.Error())
	}
	return sub
}

// LicenseTemplateName returns the template file name for a license.
func LicenseTemplateName(l models.License) string {
	return string(l) + ".tmpl"
}
