package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func rendererFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md.tmpl": &fstest.MapFile{
			Data: []byte("# {{.ProjectName}}\n\nBy {{.Author}}.\n"),
		},
		"package.json.tmpl": &fstest.MapFile{
			Data: []byte(`{"name": "{{.ProjectName}}", "author": "{{jsonEscape .Author}}"}`),
		},
		"broken.tmpl": &fstest.MapFile{
			Data: []byte("{{.ProjectName"),
		},
		"unknown-key.tmpl": &fstest.MapFile{
			Data: []byte("{{.NoSuchField}}"),
		},
	}
}

func TestRendererRender(t *testing.T) {
	t.Parallel()

	r := NewRenderer(rendererFS())
	data := NewTemplateContext(WithProject("demo"), WithAuthor("A B"))

	out, err := r.Render("README.md.tmpl", data)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "# demo") {
		t.Errorf("rendered output %q missing substituted project name", got)
	}
	if !strings.Contains(got, "By A B.") {
		t.Errorf("rendered output %q missing substituted author", got)
	}
}

func TestRendererJSONEscape(t *testing.T) {
	t.Parallel()

	r := NewRenderer(rendererFS())
	data := NewTemplateContext(WithProject("demo"), WithAuthor(`Quo "ter" \ Back`))

	out, err := r.Render("package.json.tmpl", data)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, `Quo \"ter\" \\ Back`) {
		t.Errorf("author not JSON-escaped: %q", got)
	}
}

func TestRendererTemplateNotFound(t *testing.T) {
	t.Parallel()

	r := NewRenderer(rendererFS())
	_, err := r.Render("nope.tmpl", NewTemplateContext())
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got: %v", err)
	}
}

func TestRendererParseError(t *testing.T) {
	t.Parallel()

	r := NewRenderer(rendererFS())
	_, err := r.Render("broken.tmpl", NewTemplateContext())
	if err == nil {
		t.Fatal("expected parse error for unterminated action")
	}
}

func TestRendererMissingKey(t *testing.T) {
	t.Parallel()

	r := NewRenderer(rendererFS())
	_, err := r.Render("unknown-key.tmpl", NewTemplateContext(WithProject("demo")))
	if !errors.Is(err, ErrMissingTemplateKey) {
		t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
	}
}

func TestRendererUnexpandedTokenCheck(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		// Raw braces survive rendering when emitted via a literal.
		"leftover.tmpl": &fstest.MapFile{
			Data: []byte("{{`{{Unexpanded}}`}}"),
		},
	}
	r := NewRenderer(fsys)
	_, err := r.Render("leftover.tmpl", NewTemplateContext())
	if !errors.Is(err, ErrUnexpandedToken) {
		t.Errorf("expected ErrUnexpandedToken, got: %v", err)
	}
}

func TestRendererAllowsShellVariables(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"script.sh.tmpl": &fstest.MapFile{
			Data: []byte("#!/usr/bin/env bash\necho \"$SCRIPT_DIR ${BASH_SOURCE[0]} {{.ProjectName}}\"\n"),
		},
	}
	r := NewRenderer(fsys)
	out, err := r.Render("script.sh.tmpl", NewTemplateContext(WithProject("demo")))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(string(out), "$SCRIPT_DIR") {
		t.Errorf("shell variable was mangled: %q", out)
	}
}

func TestRenderString(t *testing.T) {
	t.Parallel()

	r := NewRenderer(fstest.MapFS{})
	got, err := r.RenderString("src/{{.PackageName}}/main.py", NewTemplateContext(WithProject("my-app")))
	if err != nil {
		t.Fatalf("RenderString error: %v", err)
	}
	if got != "src/my_app/main.py" {
		t.Errorf("RenderString = %q, want %q", got, "src/my_app/main.py")
	}
}
