package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pyforge/pyinit/internal/cli/wizard"
	"github.com/pyforge/pyinit/internal/config"
	"github.com/pyforge/pyinit/internal/core/project"
	"github.com/pyforge/pyinit/internal/manifest"
	"github.com/pyforge/pyinit/internal/pyname"
	"github.com/pyforge/pyinit/internal/ui"
	"github.com/pyforge/pyinit/pkg/version"
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Initialize a Python project in place",
	Long: `Initialize a Python project from the repository template.

Usage patterns:
  pyinit init <project-name>   Create a new folder and initialize inside it
  pyinit init .                Initialize in the current directory
  pyinit init                  Initialize in the current directory (same as "pyinit init .")

Examples:
  pyinit init my-app                   Creates ./my-app/ and scaffolds it
  pyinit init . --structure library    Library layout in the current directory
  pyinit init --answers init.yaml      Non-interactive run from an answers file`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateInitFlags,
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	initCmd.Flags().String("name", "", "Project name (default: directory name)")
	initCmd.Flags().String("package", "", "Distribution package name (default: slug of the project name)")
	initCmd.Flags().String("structure", "", "Project structure: default, package, or library")
	initCmd.Flags().String("python", "", "Minimum Python version, e.g. 3.12")
	initCmd.Flags().String("author", "", "Author name written into pyproject.toml")
	initCmd.Flags().String("email", "", "Author email written into pyproject.toml")
	initCmd.Flags().String("description", "", "One-line project description")
	initCmd.Flags().String("answers", "", "YAML answers file for non-interactive runs")
	initCmd.Flags().Bool("non-interactive", false, "Skip the interactive wizard; use flags and defaults")
	initCmd.Flags().Bool("force", false, "Reinitialize an already-initialized project")
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

// validateInitFlags validates flag values before execution.
func validateInitFlags(cmd *cobra.Command, _ []string) error {
	if structure := getStringFlag(cmd, "structure"); structure != "" {
		if _, err := project.ParseStructure(structure); err != nil {
			return fmt.Errorf("invalid --structure value %q: must be one of: default, package, library", structure)
		}
	}

	if py := getStringFlag(cmd, "python"); py != "" {
		if _, ok := pyname.ValidatePythonVersion(py); !ok {
			return fmt.Errorf("invalid --python value %q: expected a supported version like %q", py, config.DefaultPythonVersion)
		}
	}

	if answersPath := getStringFlag(cmd, "answers"); answersPath != "" {
		if _, err := os.Stat(answersPath); err != nil {
			return fmt.Errorf("answers file %q: %w", answersPath, err)
		}
	}

	return nil
}

// runInit executes the project initialization workflow.
func runInit(cmd *cobra.Command, args []string) error {
	rootFlag := getStringFlag(cmd, "root")
	projectName := getStringFlag(cmd, "name")

	// Determine project root based on positional argument
	// - pyinit init <name>  → create ./name/ directory
	// - pyinit init .       → use current directory
	// - pyinit init         → use current directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if rootFlag != "" {
		// --root flag takes precedence
	} else if len(args) > 0 && args[0] != "." {
		targetDir := args[0]
		// filepath.Abs handles both absolute and relative arguments;
		// Join(cwd, absPath) would mangle absolute ones.
		absTarget, err := filepath.Abs(targetDir)
		if err != nil {
			return fmt.Errorf("resolve project path %q: %w", targetDir, err)
		}
		rootFlag = absTarget

		if err := os.MkdirAll(rootFlag, 0o755); err != nil {
			return fmt.Errorf("create project directory %q: %w", targetDir, err)
		}

		if projectName == "" {
			projectName = targetDir
		}
	} else {
		rootFlag = cwd
	}

	nonInteractive := getBoolFlag(cmd, "non-interactive")
	answersPath := getStringFlag(cmd, "answers")

	opts := project.InitOptions{
		ProjectRoot:   rootFlag,
		ProjectName:   projectName,
		PackageName:   getStringFlag(cmd, "package"),
		PythonVersion: getStringFlag(cmd, "python"),
		Author:        getStringFlag(cmd, "author"),
		Email:         getStringFlag(cmd, "email"),
		Description:   getStringFlag(cmd, "description"),
		Force:         getBoolFlag(cmd, "force"),
	}
	if structure := getStringFlag(cmd, "structure"); structure != "" {
		s, err := project.ParseStructure(structure)
		if err != nil {
			return err
		}
		opts.Structure = s
	}

	if answersPath != "" {
		answers, err := config.LoadAnswers(answersPath)
		if err != nil {
			return err
		}
		applyAnswers(&opts, answers)
	}

	interactive := !nonInteractive && answersPath == "" && isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		PrintBanner(version.GetVersion())
		PrintWelcomeMessage()

		result, err := wizard.RunWithDefaults(rootFlag)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Initialization cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		applyWizardResult(&opts, result)
	}

	if opts.ProjectName == "" {
		opts.ProjectName = project.SuggestProjectName(rootFlag)
	}

	mgr := manifest.NewManager()
	initializer := project.NewInitializer(mgr, nil)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	theme := ui.NewTheme()
	hm := ui.NewHeadlessManager()
	if !interactive {
		hm.ForceHeadless(true)
	}
	prog := ui.NewProgress(theme, hm)

	bar := prog.Start("Initializing "+opts.ProjectName, project.InitStepCount)
	initializer.SetReporter(func(step string) {
		bar.SetTitle(step)
		bar.Increment(1)
	})
	result, err := initializer.Init(ctx, opts)
	bar.Done()
	if err != nil {
		if errors.Is(err, project.ErrAlreadyInitialized) {
			return fmt.Errorf("%w: use --force to reinitialize", err)
		}
		return fmt.Errorf("initialization failed: %w", err)
	}

	printInitSuccess(cmd, result)
	return nil
}

// applyAnswers fills empty options from a loaded answers file.
func applyAnswers(opts *project.InitOptions, a *config.Answers) {
	if opts.ProjectName == "" {
		opts.ProjectName = a.Name
	}
	if opts.PackageName == "" {
		opts.PackageName = a.Package
	}
	if opts.Structure == "" && a.Structure != "" {
		if s, err := project.ParseStructure(a.Structure); err == nil {
			opts.Structure = s
		}
	}
	if opts.PythonVersion == "" {
		opts.PythonVersion = a.PythonVersion
	}
	if opts.Author == "" {
		opts.Author = a.Author
	}
	if opts.Email == "" {
		opts.Email = a.Email
	}
	if opts.Description == "" {
		opts.Description = a.Description
	}
}

// applyWizardResult fills empty options from wizard answers. Flags win
// over wizard input.
func applyWizardResult(opts *project.InitOptions, r *wizard.WizardResult) {
	if opts.ProjectName == "" {
		opts.ProjectName = r.ProjectName
	}
	if opts.PackageName == "" {
		opts.PackageName = r.PackageName
	}
	if opts.Structure == "" && r.Structure != "" {
		if s, err := project.ParseStructure(r.Structure); err == nil {
			opts.Structure = s
		}
	}
	if opts.PythonVersion == "" {
		opts.PythonVersion = r.PythonVersion
	}
	if opts.Author == "" {
		opts.Author = r.Author
	}
	if opts.Email == "" {
		opts.Email = r.Email
	}
	if opts.Description == "" {
		opts.Description = r.Description
	}
}

// printInitSuccess renders the success card and next steps.
func printInitSuccess(cmd *cobra.Command, result *project.InitResult) {
	out := cmd.OutOrStdout()

	bootstrap := "skipped (pyproject.toml already present)"
	if result.BootstrapRan {
		bootstrap = "uv init"
	}
	details := []string{
		renderKeyValueLines([]kvPair{
			{"Package", result.PackageName},
			{"Structure", string(result.Structure)},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
			{"Bootstrap", bootstrap},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, symWarning()+" "+cliWarn.Render(w))
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Python project initialized", details...))
	_, _ = fmt.Fprintln(out, renderMarkdown(nextStepsMarkdown()))
}

// nextStepsMarkdown is the post-init guidance shown to the user.
func nextStepsMarkdown() string {
	return `## Next steps

1. Review **pyproject.toml** and adjust dependencies
2. Create the environment: ` + "`uv sync`" + `
3. Run the entry point: ` + "`uv run python main.py`" + `
4. Record changes as newsfragments under ` + "`newsfragments/`" + `
`
}
