// Package cli wires the ezlay command tree: the root command plus the
// create subcommand and its terminal output helpers.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezlay/ezlay/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "ezlay",
	Short: "ezlay: project layout generator",
	Long: `ezlay scaffolds ready-to-work project layouts for Python, Node.js,
Bash, FastAPI, Next.js and Go.

Each layout ships source and test skeletons, a README and the build
tooling of its ecosystem. Optional extras add Docker assets, a LICENSE
file and post-generation setup: git init, a Python virtual environment
or npm install.

Run 'ezlay create' with flags for scripted use, or with no flags to
answer a short interactive wizard.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ezlay %s\n", version.Short()))
}

// newLogger returns the CLI logger: silent by default, debug-level text
// output on stderr when EZLAY_DEBUG is set.
func newLogger() *slog.Logger {
	if os.Getenv("EZLAY_DEBUG") == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
