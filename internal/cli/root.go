package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyforge/pyinit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "pyinit",
	Short: "pyinit: interactive Python project scaffolding",
	Long: `pyinit turns a freshly cloned repository template (or an empty
directory) into a ready-to-develop Python project.

It bootstraps pyproject.toml when missing, rewrites the project
metadata in place, deploys the selected source layout, and tracks
every generated file so repeated runs never clobber user edits.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pyinit %s\n", version.GetVersion()))
}
