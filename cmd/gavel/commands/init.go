package commands

import (
	"fmt"

	"github.com/hackjudge/gavel/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gavel project",
	Long: `Initialize a new gavel project in the current directory.

Creates:
  • gavel.yml - judging configuration with the default MLH bounty grouping
  • teams.csv - sample roster showing the expected columns

Use --force to reinitialize an existing project (WARNING: overwrites existing files).`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Force reinitialization (removes existing gavel.yml and teams.csv)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check for existing files (unless --force)
	if !forceInit {
		if err := scaffold.CheckExisting(); err != nil {
			return err
		}
	}

	// Initialize the project
	if err := scaffold.Initialize(forceInit); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	// Print success message
	scaffold.PrintSuccess()

	return nil
}
