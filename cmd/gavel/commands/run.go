package commands

import (
	"os"
	"path/filepath"

	"github.com/hackjudge/gavel/internal/charts"
	"github.com/hackjudge/gavel/internal/config"
	"github.com/hackjudge/gavel/internal/export"
	"github.com/hackjudge/gavel/internal/printer"
	"github.com/hackjudge/gavel/internal/render"
	"github.com/hackjudge/gavel/internal/roster"
	"github.com/hackjudge/gavel/pkg/schedule"
	"github.com/spf13/cobra"
)

var (
	runInput     string
	runOutput    string
	runStart     string
	runBuffer    int
	runRooms     int
	runVisualize bool
	runConfig    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate judging schedules from a team roster",
	Long: `Generate the full judging schedule for a hackathon.

Reads the team roster CSV, allocates parallel general judging rooms,
then builds the serialized category judging timeline. The result is
printed as tables and written to CSV files in the output directory.

Configuration is read from gavel.yml when present; command line flags
override the file.

Examples:
  # Generate with defaults
  gavel run -i teams.csv

  # Start at a specific time with 4 rooms
  gavel run -i teams.csv -s "2026-05-16 10:30" -r 4

  # Also render timeline charts
  gavel run -i teams.csv --visualize`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input CSV file with team data (required)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", config.DefaultOutputDir, "Output directory for schedules")
	runCmd.Flags().StringVarP(&runStart, "start", "s", "", "Start time (format: YYYY-MM-DD HH:MM)")
	runCmd.Flags().IntVarP(&runBuffer, "buffer", "b", config.DefaultBufferMinutes, "Buffer time in minutes")
	runCmd.Flags().IntVarP(&runRooms, "rooms", "r", config.DefaultRooms, "Number of judging rooms")
	runCmd.Flags().BoolVar(&runVisualize, "visualize", false, "Generate schedule visualizations")
	runCmd.Flags().StringVarP(&runConfig, "config", "c", "gavel.yml", "Path to configuration file")
	runCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	printer.Banner()

	// Phase 1: Input validation
	if _, err := os.Stat(runInput); err != nil {
		return printer.ErrorWithContext(
			"input file not found",
			"The team roster CSV could not be read.",
			map[string]string{"Input": runInput},
			[]string{
				"Check the path to your roster export",
				"Run 'gavel init' to create a sample project",
			},
		)
	}

	// Phase 2: Configuration with flag overrides
	cfg, err := loadConfig(runConfig, cmd.Flags().Changed("config"))
	if err != nil {
		return printer.Error(
			"configuration failed to load",
			err.Error(),
			[]string{
				"Fix the reported field in " + runConfig,
				"Run 'gavel init --force' to restore a working configuration",
			},
		)
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return printer.Error("invalid configuration", err.Error(), nil)
	}
	opts, err := cfg.Options()
	if err != nil {
		return printer.Error("invalid configuration", err.Error(), nil)
	}

	// Phase 3: Load the roster
	printer.Step("Loading team data...\n")
	teams, err := roster.Load(runInput, cfg.Columns())
	if err != nil {
		return printer.ErrorWithContext(
			"failed to load team roster",
			err.Error(),
			map[string]string{"Input": runInput},
			[]string{"Make sure the CSV has the columns named in the roster section of " + runConfig},
		)
	}
	printer.Success("Loaded %d teams\n", len(teams))

	// Phase 4: Generate the schedule
	printer.Step("Generating schedule...\n")
	result, err := schedule.Generate(teams, opts)
	if err != nil {
		return printer.Error("failed to generate schedule", err.Error(), nil)
	}
	printer.Success("Schedule generated for %d teams across %d rooms\n",
		result.Stats.TotalTeams, len(result.Schedule.Rooms))

	// Phase 5: Display
	render.Overview(os.Stdout, result.Stats)
	render.AggregateNote(os.Stdout, opts.Aggregate)
	if err := render.GeneralTables(os.Stdout, *result.Schedule); err != nil {
		return err
	}
	if err := render.CategoryTables(os.Stdout, *result.Schedule); err != nil {
		return err
	}
	render.Skips(os.Stdout, result.Skips)

	// Phase 6: Export
	outputDir := cfg.Output.Directory
	printer.Step("Saving schedules to %s directory...\n", outputDir)
	files, err := export.Schedules(*result.Schedule, outputDir)
	if err != nil {
		return printer.Error("failed to export schedules", err.Error(), nil)
	}
	printer.Success("Saved %d CSV schedule files\n", len(files))

	if runVisualize {
		printer.Step("Generating visualizations...\n")
		viz, err := charts.Generate(*result.Schedule, result.Stats, outputDir)
		if err != nil {
			return printer.Error("failed to generate visualizations", err.Error(), nil)
		}
		printer.Success("Generated %d visualizations\n", len(viz))
	}

	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		absDir = outputDir
	}
	printer.Success("Schedule generation complete!\n")
	printer.Info("Files saved to: %s\n", absDir)

	return nil
}

// loadConfig reads the configuration file. An explicitly passed path must
// load; the default gavel.yml is optional and falls back to built-in
// defaults when absent.
func loadConfig(path string, explicit bool) (*config.GavelConfig, error) {
	if !explicit {
		if _, err := os.Stat(path); err != nil {
			printer.Warning("No %s found, using built-in defaults\n", path)
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// applyFlagOverrides layers explicitly set flags over the file configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.GavelConfig) {
	if cmd.Flags().Changed("start") {
		cfg.Event.Start = runStart
	}
	if cmd.Flags().Changed("rooms") {
		rooms := runRooms
		cfg.Judging.Rooms = &rooms
	}
	if cmd.Flags().Changed("buffer") {
		buffer := runBuffer
		cfg.Judging.BufferMinutes = &buffer
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Directory = runOutput
	}
}
