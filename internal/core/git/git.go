// Package git shells out to the system git binary for repository
// initialization. Generated projects get a fresh repository when the
// git option is enabled; failures are reported to the caller, which
// treats them as warnings rather than aborting generation.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrSystemGitNotFound indicates no git binary is available on PATH.
var ErrSystemGitNotFound = errors.New("git: system git not found")

// Init creates a new git repository in dir.
func Init(ctx context.Context, dir string) error {
	_, err := execGit(ctx, dir, "init")
	return err
}

// Available reports whether a git binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
