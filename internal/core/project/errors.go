// Package project turns a resolved configuration into a project tree on
// disk. It owns the generation sequence for the "ezlay create" command:
// target guarding, directory creation, template deployment, license and
// Docker asset emission, and the best-effort post-generation actions
// (git init, virtual environment, npm install).
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrTargetExists indicates the project name collides with an
	// existing file (not a directory).
	ErrTargetExists = errors.New("target path exists and is not a directory")

	// ErrTargetNotEmpty indicates the target directory exists and
	// already contains entries.
	ErrTargetNotEmpty = errors.New("target directory is not empty")
)
