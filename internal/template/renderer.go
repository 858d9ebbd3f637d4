package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON values.
	// It handles backslashes, quotes, and control characters by leveraging
	// encoding/json.Marshal, then stripping the surrounding quotes.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
	// posixPath converts Windows backslash paths to forward-slash POSIX paths.
	"posixPath": func(s string) string {
		return strings.ReplaceAll(s, "\\", "/")
	},
}

// unexpandedTokenPattern detects leftover substitution tokens in rendered
// output: {{Var}} and {{.Var}} forms. Shell variables ($VAR, ${VAR}) are
// deliberately not matched because generated scripts and Makefiles use
// them literally.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template content with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the template FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)

	// RenderString executes an in-memory template string with the given
	// data. Used for templated path segments such as
	// "src/{{.PackageName}}/main.py".
	RenderString(text string, data any) (string, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}
	return r.execute(templateName, string(content), data)
}

// RenderString parses and executes an in-memory template string.
func (r *renderer) RenderString(text string, data any) (string, error) {
	out, err := r.execute("inline", text, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (r *renderer) execute(name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %q", ErrUnexpandedToken, string(loc), name)
	}
	return result, nil
}
