// Package toolchain shells out to language tooling for post-generation
// steps: npm install for node and nextjs projects, virtual environment
// creation for python and fastapi projects. Failures surface as
// warnings on the generation result, never as generation failures.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrNPMNotFound indicates no npm binary is available on PATH.
	ErrNPMNotFound = errors.New("toolchain: npm not found")

	// ErrPythonNotFound indicates neither python3 nor python is
	// available on PATH.
	ErrPythonNotFound = errors.New("toolchain: python not found")
)

// NPMInstall runs npm install in dir.
func NPMInstall(ctx context.Context, dir string) error {
	npmPath, err := exec.LookPath("npm")
	if err != nil {
		return fmt.Errorf("npm lookup: %w", ErrNPMNotFound)
	}
	return run(ctx, dir, npmPath, "install")
}

// CreateVenv creates a virtual environment named venv in dir, preferring
// python3 and falling back to python.
func CreateVenv(ctx context.Context, dir string) error {
	pythonPath, err := pythonBinary()
	if err != nil {
		return err
	}
	return run(ctx, dir, pythonPath, "-m", "venv", "venv")
}

// pythonBinary resolves the python interpreter to use, trying python3
// before python.
func pythonBinary() (string, error) {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("python lookup: %w", ErrPythonNotFound)
}

// run executes bin with args in dir, folding stderr into the error.
func run(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		name := filepath.Base(bin)
		if len(args) > 0 {
			name += " " + args[0]
		}
		return fmt.Errorf("%s: %s: %w", name, errMsg, err)
	}
	return nil
}
