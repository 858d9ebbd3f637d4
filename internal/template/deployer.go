package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Deployer extracts templates from a template filesystem and deploys
// them under a project root directory.
type Deployer interface {
	// Deploy walks the template FS and writes every file to projectRoot,
	// returning the relative paths written, in walk order. Files ending
	// in .tmpl are rendered with tmplCtx and saved without the suffix;
	// path segments containing template tokens are rendered the same way.
	Deploy(ctx context.Context, projectRoot string, tmplCtx *TemplateContext) ([]string, error)

	// ListTemplates returns the relative deployment target paths of all
	// files in the template FS (with .tmpl suffixes stripped, path
	// tokens rendered when a context is given).
	ListTemplates(tmplCtx *TemplateContext) ([]string, error)
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys     fs.FS
	renderer Renderer
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use
// testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys)}
}

// Deploy walks the template filesystem and writes every file to
// projectRoot. Files ending in .tmpl are rendered; other files are
// copied verbatim. Shell scripts are written executable.
func (d *deployer) Deploy(ctx context.Context, projectRoot string, tmplCtx *TemplateContext) ([]string, error) {
	projectRoot = filepath.Clean(projectRoot)

	var written []string
	walkErr := fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each file
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == "." {
			return nil
		}

		// Directories are created on demand
		if entry.IsDir() {
			return nil
		}

		var content []byte
		destRelPath := path

		if strings.HasSuffix(path, ".tmpl") {
			rendered, renderErr := d.renderer.Render(path, tmplCtx)
			if renderErr != nil {
				return fmt.Errorf("template render %q: %w", path, renderErr)
			}
			content = rendered
			destRelPath = strings.TrimSuffix(path, ".tmpl")
		} else {
			raw, readErr := fs.ReadFile(d.fsys, path)
			if readErr != nil {
				return fmt.Errorf("template deploy read %q: %w", path, readErr)
			}
			content = raw
		}

		// Path segments may carry template tokens (e.g. cmd/{{.ProjectName}}/main.go)
		destRelPath, err = d.renderPath(destRelPath, tmplCtx)
		if err != nil {
			return err
		}

		// Validate path security after rendering
		if err := validateDeployPath(projectRoot, destRelPath); err != nil {
			return err
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(destRelPath))

		destDir := filepath.Dir(destPath)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return fmt.Errorf("template deploy mkdir %q: %w", destDir, err)
		}

		// Shell scripts need the executable bit
		perm := fs.FileMode(0o644)
		if strings.HasSuffix(destRelPath, ".sh") {
			perm = 0o755
		}

		if err := os.WriteFile(destPath, content, perm); err != nil {
			return fmt.Errorf("template deploy write %q: %w", destPath, err)
		}

		written = append(written, destRelPath)
		return nil
	})

	if walkErr != nil {
		return written, walkErr
	}
	return written, nil
}

// ListTemplates returns the deployment target paths of all files in the
// template FS, in walk order.
func (d *deployer) ListTemplates(tmplCtx *TemplateContext) ([]string, error) {
	var list []string

	err := fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." || entry.IsDir() {
			return nil
		}
		target := strings.TrimSuffix(path, ".tmpl")
		target, rerr := d.renderPath(target, tmplCtx)
		if rerr != nil {
			return rerr
		}
		list = append(list, target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// renderPath renders template tokens inside a relative path. Paths
// without tokens pass through unchanged.
func (d *deployer) renderPath(relPath string, tmplCtx *TemplateContext) (string, error) {
	if !strings.Contains(relPath, "{{") {
		return relPath, nil
	}
	if tmplCtx == nil {
		return "", fmt.Errorf("%w: templated path %q without context", ErrMissingTemplateKey, relPath)
	}
	rendered, err := d.renderer.RenderString(relPath, tmplCtx)
	if err != nil {
		return "", fmt.Errorf("template path render %q: %w", relPath, err)
	}
	return rendered, nil
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
