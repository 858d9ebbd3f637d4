package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezlay/ezlay/internal/catalog"
	"github.com/ezlay/ezlay/internal/cli/wizard"
	"github.com/ezlay/ezlay/internal/config"
	"github.com/ezlay/ezlay/internal/core/project"
	"github.com/ezlay/ezlay/internal/template"
	"github.com/ezlay/ezlay/internal/ui"
	"github.com/ezlay/ezlay/pkg/models"
)

var createCmd = newCreateCmd()

// runWizard is swapped in tests to avoid driving a real terminal.
var runWizard = wizard.Run

// headlessManager detects whether a terminal is attached. Tests pin its
// state with ForceHeadless.
var headlessManager = ui.NewHeadlessManager()

// newCreateCmd builds the create command with its flag set.
func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project layout",
		Long: `Create a new project directory with a ready-to-work layout.

Usage patterns:
  ezlay create                                      Answer the interactive wizard
  ezlay create --project_type go --project_name x  Fully scripted creation

Examples:
  ezlay create --project_type python --project_name my-tool --venv
  ezlay create --project_type nextjs --project_name shiny-site --docker --npm_install
  ezlay create --project_type bash --project_name deploy-kit --license mit --author "Dev One"`,
		PreRunE: validateCreateFlags,
		RunE:    runCreate,
	}

	cmd.Flags().String("project_type", "", "Project type: python, node, bash, fastapi, nextjs, go")
	cmd.Flags().String("project_name", "", "Name of the project directory to create")
	cmd.Flags().String("license", "", "License to include: mit, apache, none")
	cmd.Flags().String("author", "", "Author name for the license copyright line")
	cmd.Flags().Bool("docker", false, "Add a Dockerfile, docker-compose.yml and .dockerignore")
	cmd.Flags().Bool("venv", false, "Create a Python virtual environment (python, fastapi)")
	cmd.Flags().Bool("npm_install", false, "Run npm install after generation (node, nextjs)")
	cmd.Flags().Bool("git", true, "Initialize a git repository")

	return cmd
}

func init() {
	rootCmd.AddCommand(createCmd)
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateCreateFlags validates flag values before execution.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	projectType := getStringFlag(cmd, "project_type")
	if projectType != "" {
		valid := make([]string, 0, len(models.ValidProjectTypes()))
		for _, t := range models.ValidProjectTypes() {
			valid = append(valid, string(t))
		}
		if !slices.Contains(valid, projectType) {
			return fmt.Errorf("invalid --project_type value %q: must be one of: %s",
				projectType, strings.Join(valid, ", "))
		}
	}

	license := getStringFlag(cmd, "license")
	if license != "" {
		if _, ok := models.ParseLicense(license); !ok {
			return fmt.Errorf("invalid --license value %q: must be one of: mit, apache, none", license)
		}
	}

	name := getStringFlag(cmd, "project_name")
	if name != "" && !models.ValidProjectName(name) {
		return fmt.Errorf("invalid --project_name value %q: must start with a letter or digit and contain only letters, digits, hyphens and underscores", name)
	}

	return nil
}

// runCreate executes the project creation workflow.
func runCreate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Configured defaults are advisory; a broken file is reported and
	// ignored.
	defaults, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(out, cliWarn.Render(fmt.Sprintf("Warning: ignoring defaults file: %v", err)))
		defaults = &config.Defaults{}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	headless := headlessManager.IsHeadless()

	cfg, err := resolveConfig(cmd, defaults, cwd, headless)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, "Project creation cancelled.")
			return nil
		}
		return err
	}

	reporter := ui.NewReporter(ui.DefaultTheme(), headlessManager, out)
	spin := reporter.Spinner(fmt.Sprintf("Creating %s project %q...", cfg.Type, cfg.Name))

	gen := project.NewGenerator(newLogger())
	result, err := gen.Generate(ctx, project.Options{Config: *cfg, BaseDir: cwd})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Path", result.Path},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(fmt.Sprintf("Created %s project %s", cfg.Type, cfg.Name), details...))

	// The project exists at this point, so a broken next-steps template
	// must not turn the run into a failure.
	if steps, err := nextStepsText(cfg); err == nil {
		_, _ = fmt.Fprintln(out, renderNextSteps(steps, headless))
	} else {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Warning: next steps unavailable: "+err.Error()))
	}

	return nil
}

// resolveConfig merges flags, configured defaults and wizard answers
// into a complete project configuration. Explicit flags win; the wizard
// only runs when project type or name are missing and a terminal is
// attached.
func resolveConfig(cmd *cobra.Command, defaults *config.Defaults, baseDir string, headless bool) (*models.ProjectConfig, error) {
	flags := cmd.Flags()

	cfg := &models.ProjectConfig{
		Type:       models.ProjectType(getStringFlag(cmd, "project_type")),
		Name:       getStringFlag(cmd, "project_name"),
		Author:     getStringFlag(cmd, "author"),
		Docker:     getBoolFlag(cmd, "docker"),
		Venv:       getBoolFlag(cmd, "venv"),
		NPMInstall: getBoolFlag(cmd, "npm_install"),
		Git:        getBoolFlag(cmd, "git"),
	}

	licenseFlag := getStringFlag(cmd, "license")
	licenseSet := flags.Changed("license")

	if cfg.Type == "" || cfg.Name == "" {
		if headless {
			return nil, errors.New("--project_type and --project_name are required when no terminal is attached")
		}

		result, err := runWizard(wizard.DefaultQuestions(defaults, baseDir))
		if err != nil {
			return nil, err
		}

		// Wizard answers fill empty flags; explicit flags keep their
		// value. Configured defaults reached the wizard as prefills, so
		// they flow back through the answers.
		if cfg.Type == "" {
			cfg.Type = models.ProjectType(result.ProjectType)
		}
		if cfg.Name == "" {
			cfg.Name = result.ProjectName
		}
		if !licenseSet {
			licenseFlag = result.License
		}
		if cfg.Author == "" {
			cfg.Author = result.Author
		}
		if !flags.Changed("docker") {
			cfg.Docker = result.Docker
		}
		if !flags.Changed("venv") {
			cfg.Venv = result.Venv
		}
		if !flags.Changed("npm_install") {
			cfg.NPMInstall = result.NPMInstall
		}
	} else {
		// Scripted path: configured defaults fill what the flags left
		// unset.
		if !licenseSet && defaults.License != "" {
			licenseFlag = defaults.License
		}
		if !flags.Changed("docker") && defaults.Docker != nil {
			cfg.Docker = *defaults.Docker
		}
	}

	// The wizard never asks about git; the configured default applies on
	// both paths.
	if !flags.Changed("git") && defaults.Git != nil {
		cfg.Git = *defaults.Git
	}

	// The configured author also fills manifest author fields when no
	// license is involved.
	if cfg.Author == "" {
		cfg.Author = defaults.Author
	}

	// PreRunE and the defaults loader both validate license values, so an
	// unparsable value cannot reach this point.
	license, _ := models.ParseLicense(licenseFlag)
	cfg.License = license

	// A chosen license needs a copyright holder; fall back to the OS user.
	if !cfg.License.None() && cfg.Author == "" {
		cfg.Author = osUserName()
	}

	return cfg, nil
}

// nextStepsText assembles the per-type follow-up commands with the
// project name substituted.
func nextStepsText(cfg *models.ProjectConfig) (string, error) {
	spec, err := catalog.Lookup(cfg.Type)
	if err != nil {
		return "", err
	}
	steps, err := spec.NextSteps(cfg.Docker)
	if err != nil {
		return "", err
	}
	renderer := template.NewRenderer(spec.Files)
	return renderer.RenderString(steps, template.NewTemplateContext(template.WithProject(cfg.Name)))
}

// osUserName returns the current OS user's display name, preferring the
// full name over the login name.
func osUserName() string {
	if u, err := user.Current(); err == nil {
		if u.Name != "" {
			return u.Name
		}
		return u.Username
	}
	return os.Getenv("USER")
}
