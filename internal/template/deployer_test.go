package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"
)

func deployFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md.tmpl": &fstest.MapFile{
			Data: []byte("# {{.ProjectName}}\n"),
		},
		".gitignore": &fstest.MapFile{
			Data: []byte("node_modules/\n.env\n"),
		},
		"scripts/main.sh": &fstest.MapFile{
			Data: []byte("#!/usr/bin/env bash\necho hi\n"),
		},
		"src/{{.PackageName}}/main.py.tmpl": &fstest.MapFile{
			Data: []byte(`"""{{.ProjectName}} entry point."""` + "\n"),
		},
	}
}

func TestDeployerDeploy(t *testing.T) {
	t.Run("writes_all_files", func(t *testing.T) {
		root := t.TempDir()
		d := NewDeployer(deployFS())
		tmplCtx := NewTemplateContext(WithProject("my-app"))

		written, err := d.Deploy(context.Background(), root, tmplCtx)
		if err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		expected := []string{
			"README.md",
			".gitignore",
			"scripts/main.sh",
			"src/my_app/main.py",
		}
		for _, f := range expected {
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
				t.Errorf("expected file %q to exist: %v", f, err)
			}
			if !slices.Contains(written, f) {
				t.Errorf("Deploy result missing %q (got %v)", f, written)
			}
		}
		if len(written) != len(expected) {
			t.Errorf("Deploy wrote %d files, want %d: %v", len(written), len(expected), written)
		}
	})

	t.Run("renders_tmpl_files", func(t *testing.T) {
		root := t.TempDir()
		d := NewDeployer(deployFS())
		tmplCtx := NewTemplateContext(WithProject("my-app"))

		if _, err := d.Deploy(context.Background(), root, tmplCtx); err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		readme, err := os.ReadFile(filepath.Join(root, "README.md"))
		if err != nil {
			t.Fatalf("ReadFile error: %v", err)
		}
		if string(readme) != "# my-app\n" {
			t.Errorf("README.md = %q, want substituted name", readme)
		}

		// .tmpl suffix must not appear on disk
		if _, err := os.Stat(filepath.Join(root, "README.md.tmpl")); err == nil {
			t.Error("README.md.tmpl should not exist after deploy")
		}
	})

	t.Run("copies_literal_files_verbatim", func(t *testing.T) {
		root := t.TempDir()
		d := NewDeployer(deployFS())

		if _, err := d.Deploy(context.Background(), root, NewTemplateContext(WithProject("x"))); err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		gi, err := os.ReadFile(filepath.Join(root, ".gitignore"))
		if err != nil {
			t.Fatalf("ReadFile error: %v", err)
		}
		if string(gi) != "node_modules/\n.env\n" {
			t.Errorf(".gitignore content changed: %q", gi)
		}
	})

	t.Run("shell_scripts_are_executable", func(t *testing.T) {
		root := t.TempDir()
		d := NewDeployer(deployFS())

		if _, err := d.Deploy(context.Background(), root, NewTemplateContext(WithProject("x"))); err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		info, err := os.Stat(filepath.Join(root, "scripts", "main.sh"))
		if err != nil {
			t.Fatalf("Stat error: %v", err)
		}
		if info.Mode().Perm()&0o111 == 0 {
			t.Errorf("main.sh mode = %v, want executable bit set", info.Mode())
		}
	})

	t.Run("honors_context_cancellation", func(t *testing.T) {
		root := t.TempDir()
		d := NewDeployer(deployFS())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := d.Deploy(ctx, root, NewTemplateContext(WithProject("x")))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	})

	t.Run("rejects_traversal_paths", func(t *testing.T) {
		root := t.TempDir()
		fsys := fstest.MapFS{
			"ok.txt": &fstest.MapFile{Data: []byte("fine")},
			"{{.ProjectName}}/note.txt": &fstest.MapFile{
				Data: []byte("rendered dir"),
			},
		}
		d := NewDeployer(fsys)
		// A hostile name would have been rejected by validation, but the
		// deployer still refuses to write outside the root.
		tmplCtx := NewTemplateContext()
		tmplCtx.ProjectName = "../escape"
		tmplCtx.PackageName = "escape"

		_, err := d.Deploy(context.Background(), root, tmplCtx)
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("expected ErrPathTraversal, got: %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(filepath.Dir(root), "escape")); statErr == nil {
			t.Error("file was written outside project root")
		}
	})
}

func TestDeployerListTemplates(t *testing.T) {
	t.Parallel()

	d := NewDeployer(deployFS())
	list, err := d.ListTemplates(NewTemplateContext(WithProject("my-app")))
	if err != nil {
		t.Fatalf("ListTemplates error: %v", err)
	}

	want := []string{
		".gitignore",
		"README.md",
		"scripts/main.sh",
		"src/my_app/main.py",
	}
	slices.Sort(list)
	if !slices.Equal(list, want) {
		t.Errorf("ListTemplates = %v, want %v", list, want)
	}
}

func TestValidateDeployPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	tests := []struct {
		name    string
		rel     string
		wantErr bool
	}{
		{"simple file", "README.md", false},
		{"nested file", "src/app/main.py", false},
		{"parent reference", "../outside.txt", true},
		{"embedded parent reference", "src/../../outside.txt", true},
		{"absolute path", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateDeployPath(root, tt.rel)
			if tt.wantErr && !errors.Is(err, ErrPathTraversal) {
				t.Errorf("expected ErrPathTraversal for %q, got: %v", tt.rel, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error for %q, got: %v", tt.rel, err)
			}
		})
	}
}
