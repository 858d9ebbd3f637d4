// Package template renders and deploys the embedded project templates.
// A Renderer executes Go text/template files with strict mode enabled;
// a Deployer walks a template filesystem and materializes it under a
// project root, rendering .tmpl files and templated path segments.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist
	// in the template filesystem.
	ErrTemplateNotFound = errors.New("template: template not found")

	// ErrMissingTemplateKey indicates a template referenced a context
	// field that was not provided.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates rendered output still contains an
	// unexpanded substitution token.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")

	// ErrPathTraversal indicates a template path would escape the
	// project root.
	ErrPathTraversal = errors.New("template: path escapes project root")
)
