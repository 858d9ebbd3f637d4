package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ezlay/ezlay/internal/catalog"
	"github.com/ezlay/ezlay/internal/core/git"
	"github.com/ezlay/ezlay/internal/core/toolchain"
	"github.com/ezlay/ezlay/internal/manifest"
	"github.com/ezlay/ezlay/internal/template"
	"github.com/ezlay/ezlay/pkg/models"
	"github.com/ezlay/ezlay/pkg/version"
)

// Options configures a generation run.
type Options struct {
	// Config is the resolved, validated set of user choices.
	Config models.ProjectConfig

	// BaseDir is the directory the project is created under. Empty
	// means the current working directory.
	BaseDir string
}

// Result summarizes the outcome of a generation run.
type Result struct {
	Path         string        // Absolute path to the project root.
	CreatedDirs  []string      // Directories created, relative to Path.
	CreatedFiles []string      // Files written, relative to Path.
	Warnings     []string      // Non-fatal problems (failed post-gen actions, manifest issues).
	Duration     time.Duration // Wall-clock time of the whole run.
}

// Generator turns a ProjectConfig into a project tree on disk.
type Generator struct {
	logger *slog.Logger

	// Subprocess runners and the manifest check, injectable for tests.
	gitInit       func(ctx context.Context, dir string) error
	createVenv    func(ctx context.Context, dir string) error
	npmInstall    func(ctx context.Context, dir string) error
	checkManifest func(path string) (*manifest.Report, error)
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		logger:        logger,
		gitInit:       git.Init,
		createVenv:    toolchain.CreateVenv,
		npmInstall:    toolchain.NPMInstall,
		checkManifest: manifest.CheckFile,
	}
}

// Generate creates the project described by opts. Template deployment
// failures abort with an error and leave the partial tree in place;
// post-generation actions (git init, venv, npm install) and the
// package.json check degrade to warnings on the result.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	cfg := opts.Config

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	spec, err := catalog.Lookup(cfg.Type)
	if err != nil {
		return nil, err
	}

	base := opts.BaseDir
	if base == "" {
		base = "."
	}
	path, err := filepath.Abs(filepath.Join(base, cfg.Name))
	if err != nil {
		return nil, fmt.Errorf("resolve target path: %w", err)
	}

	if err := guardTarget(path); err != nil {
		return nil, err
	}

	g.logger.Info("generating project",
		"type", cfg.Type,
		"name", cfg.Name,
		"path", path,
	)

	result := &Result{Path: path}

	tmplCtx := template.NewTemplateContext(
		template.WithProject(cfg.Name),
		template.WithAuthor(cfg.Author),
		template.WithLicense(cfg.License),
		template.WithVersion(version.Short()),
	)

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create project root: %w", err)
	}

	// Step 1: skeleton directories, including ones that stay empty.
	renderer := template.NewRenderer(spec.Files)
	if err := g.createDirs(ctx, path, spec.Dirs, renderer, tmplCtx, result); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	// Step 2: template files.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := template.NewDeployer(spec.Files).Deploy(ctx, path, tmplCtx)
	if err != nil {
		return nil, fmt.Errorf("deploy %s templates: %w", cfg.Type, err)
	}
	result.CreatedFiles = append(result.CreatedFiles, files...)

	// Step 3: LICENSE.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !cfg.License.None() {
		if err := g.writeLicense(path, cfg.License, tmplCtx, result); err != nil {
			return nil, fmt.Errorf("write license: %w", err)
		}
	}

	// Step 4: Docker assets.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Docker {
		assets, err := catalog.DockerAssets(cfg.Type)
		if err != nil {
			return nil, err
		}
		dockerFiles, err := template.NewDeployer(assets).Deploy(ctx, path, tmplCtx)
		if err != nil {
			return nil, fmt.Errorf("deploy docker assets: %w", err)
		}
		result.CreatedFiles = append(result.CreatedFiles, dockerFiles...)
	}

	// Step 5: post-generation actions, best effort.
	g.runPostActions(ctx, cfg, path, result)

	// Step 6: package.json schema check for npm-based projects.
	if cfg.Type == models.ProjectTypeNode || cfg.Type == models.ProjectTypeNextJS {
		g.checkPackageManifest(path, result)
	}

	result.Duration = time.Since(start)
	g.logger.Info("project generated",
		"path", path,
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"warnings", len(result.Warnings),
		"duration", result.Duration,
	)

	return result, nil
}

// guardTarget rejects targets that already hold content. A pre-existing
// empty directory is allowed.
func guardTarget(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrTargetExists, path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read target: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrTargetNotEmpty, path)
	}
	return nil
}

// createDirs creates the spec's directory skeleton under root. Segments
// carrying template tokens (src/{{.PackageName}}) are rendered first.
func (g *Generator) createDirs(ctx context.Context, root string, dirs []string, renderer template.Renderer, tmplCtx *template.TemplateContext, result *Result) error {
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := dir
		if strings.Contains(rel, "{{") {
			rendered, err := renderer.RenderString(rel, tmplCtx)
			if err != nil {
				return fmt.Errorf("render directory %q: %w", dir, err)
			}
			rel = rendered
		}

		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", rel, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, rel)
	}
	return nil
}

// writeLicense renders the chosen license text into <root>/LICENSE.
func (g *Generator) writeLicense(root string, license models.License, tmplCtx *template.TemplateContext, result *Result) error {
	renderer := template.NewRenderer(catalog.Licenses())

	content, err := renderer.Render(catalog.LicenseTemplateName(license), tmplCtx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(root, "LICENSE"), content, 0o644); err != nil {
		return err
	}
	result.CreatedFiles = append(result.CreatedFiles, "LICENSE")
	return nil
}

// runPostActions runs the flag-gated subprocess steps. Every failure,
// including a cancelled context, lands in result.Warnings; by this point
// the project tree is complete and the run no longer aborts.
func (g *Generator) runPostActions(ctx context.Context, cfg models.ProjectConfig, path string, result *Result) {
	if cfg.Git {
		if err := g.gitInit(ctx, path); err != nil {
			g.warn(result, "git init", err)
		}
	}

	if cfg.Venv {
		if !cfg.Type.SupportsVenv() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("venv skipped: not applicable to %s projects", cfg.Type))
		} else if err := g.createVenv(ctx, path); err != nil {
			g.warn(result, "venv creation", err)
		}
	}

	if cfg.NPMInstall {
		if !cfg.Type.SupportsNPMInstall() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("npm install skipped: not applicable to %s projects", cfg.Type))
		} else if err := g.npmInstall(ctx, path); err != nil {
			g.warn(result, "npm install", err)
		}
	}
}

// checkPackageManifest validates the generated package.json against the
// embedded schema, downgrading every finding to a warning.
func (g *Generator) checkPackageManifest(path string, result *Result) {
	report, err := g.checkManifest(filepath.Join(path, "package.json"))
	if err != nil {
		g.warn(result, "package.json check", err)
		return
	}
	for _, issue := range report.Issues {
		result.Warnings = append(result.Warnings, "package.json: "+issue.String())
	}
}

func (g *Generator) warn(result *Result, step string, err error) {
	result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", step, err))
	g.logger.Warn(step+" failed", "error", err)
}
