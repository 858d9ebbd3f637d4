package catalog

import (
	"errors"
	"io/fs"
	"slices"
	"strings"
	"testing"

	"github.com/ezlay/ezlay/pkg/models"
)

// walkFiles collects every regular file path in fsys, sorted.
func walkFiles(t *testing.T, fsys fs.FS) []string {
	t.Helper()

	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir error: %v", err)
	}
	slices.Sort(files)
	return files
}

func TestLookupUnknownType(t *testing.T) {
	t.Parallel()

	_, err := Lookup(models.ProjectType("rust"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got: %v", err)
	}
}

func TestLookupCoversAllProjectTypes(t *testing.T) {
	t.Parallel()

	for _, pt := range models.ValidProjectTypes() {
		spec, err := Lookup(pt)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", pt, err)
			continue
		}
		if spec.Type != pt {
			t.Errorf("Lookup(%q).Type = %q", pt, spec.Type)
		}
		if len(spec.Dirs) == 0 {
			t.Errorf("Lookup(%q) has no directories", pt)
		}
		if files := walkFiles(t, spec.Files); len(files) == 0 {
			t.Errorf("Lookup(%q) has no template files", pt)
		}
	}
}

func TestLookupTemplateSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		projectType models.ProjectType
		want        []string
	}{
		{
			projectType: models.ProjectTypePython,
			want: []string{
				"README.md.tmpl",
				"requirements-dev.txt",
				"requirements.txt",
				"setup.py.tmpl",
				"src/{{.PackageName}}/__init__.py",
				"src/{{.PackageName}}/main.py",
				"tests/test_main.py",
			},
		},
		{
			projectType: models.ProjectTypeNode,
			want: []string{
				".gitignore",
				"README.md.tmpl",
				"package.json.tmpl",
				"src/index.js",
				"tests/index.test.js",
			},
		},
		{
			projectType: models.ProjectTypeBash,
			want: []string{
				"README.md.tmpl",
				"scripts/common.sh",
				"scripts/main.sh",
				"tests/test_main.sh",
			},
		},
		{
			projectType: models.ProjectTypeFastAPI,
			want: []string{
				"README.md.tmpl",
				"app/core/config.py",
				"app/db/session.py",
				"app/main.py",
				"requirements-dev.txt",
				"requirements.txt",
			},
		},
		{
			projectType: models.ProjectTypeNextJS,
			want: []string{
				".env.local",
				".prettierrc",
				"next.config.js",
				"package.json.tmpl",
				"postcss.config.js",
				"src/app/globals.css",
				"src/app/layout.tsx.tmpl",
				"src/app/page.tsx.tmpl",
				"tailwind.config.js",
				"tsconfig.json",
			},
		},
		{
			projectType: models.ProjectTypeGo,
			want: []string{
				"Makefile.tmpl",
				"README.md.tmpl",
				"cmd/{{.ProjectName}}/main.go.tmpl",
				"go.mod.tmpl",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.projectType), func(t *testing.T) {
			t.Parallel()

			spec, err := Lookup(tt.projectType)
			if err != nil {
				t.Fatalf("Lookup error: %v", err)
			}
			got := walkFiles(t, spec.Files)
			if !slices.Equal(got, tt.want) {
				t.Errorf("template set = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDockerAssets(t *testing.T) {
	t.Parallel()

	want := []string{".dockerignore", "Dockerfile", "docker-compose.yml"}

	for _, pt := range models.ValidProjectTypes() {
		t.Run(string(pt), func(t *testing.T) {
			t.Parallel()

			assets, err := DockerAssets(pt)
			if err != nil {
				t.Fatalf("DockerAssets error: %v", err)
			}
			got := walkFiles(t, assets)
			if !slices.Equal(got, want) {
				t.Errorf("docker assets = %v, want %v", got, want)
			}
		})
	}

	t.Run("unknown_type", func(t *testing.T) {
		t.Parallel()

		_, err := DockerAssets(models.ProjectType("rust"))
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got: %v", err)
		}
	})
}

func TestNextSteps(t *testing.T) {
	t.Parallel()

	for _, pt := range models.ValidProjectTypes() {
		t.Run(string(pt), func(t *testing.T) {
			t.Parallel()

			spec, err := Lookup(pt)
			if err != nil {
				t.Fatalf("Lookup error: %v", err)
			}

			steps, err := spec.NextSteps(false)
			if err != nil {
				t.Fatalf("NextSteps error: %v", err)
			}
			if !strings.Contains(steps, "cd {{.ProjectName}}") {
				t.Errorf("next steps missing project cd command:\n%s", steps)
			}
			if strings.Contains(steps, "docker-compose") {
				t.Error("next steps mention docker without the docker flag")
			}

			withDocker, err := spec.NextSteps(true)
			if err != nil {
				t.Fatalf("NextSteps(docker) error: %v", err)
			}
			if !strings.Contains(withDocker, "docker-compose up --build") {
				t.Errorf("docker next steps missing compose command:\n%s", withDocker)
			}
			if !strings.HasPrefix(withDocker, steps) {
				t.Error("docker section should be appended after the base steps")
			}
		})
	}
}

func TestLicenses(t *testing.T) {
	t.Parallel()

	fsys := Licenses()
	for _, l := range models.ValidLicenses() {
		if l.None() {
			continue
		}
		name := LicenseTemplateName(l)
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			t.Errorf("license template %q: %v", name, err)
			continue
		}
		body := string(data)
		if !strings.Contains(body, "{{.Year}}") || !strings.Contains(body, "{{.Author}}") {
			t.Errorf("license template %q missing year/author tokens", name)
		}
	}
}

func TestLicenseTemplateName(t *testing.T) {
	t.Parallel()

	if got := LicenseTemplateName(models.LicenseMIT); got != "mit.tmpl" {
		t.Errorf("LicenseTemplateName(mit) = %q", got)
	}
	if got := LicenseTemplateName(models.LicenseApache); got != "apache.tmpl" {
		t.Errorf("LicenseTemplateName(apache) = %q", got)
	}
}
