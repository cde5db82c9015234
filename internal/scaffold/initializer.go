// Package scaffold creates a starter gavel project: a commented gavel.yml
// and a sample team roster.
package scaffold

import (
	"embed"
	"fmt"
	"os"

	"github.com/hackjudge/gavel/internal/config"
	"github.com/hackjudge/gavel/internal/roster"
)

//go:embed templates/*
var templatesFS embed.FS

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize creates the gavel project files in the current directory.
// If force is true, existing gavel.yml and teams.csv are removed first.
func Initialize(force bool) error {
	if force {
		if err := handleForce(); err != nil {
			return err
		}
	}

	files, err := getTemplateFiles()
	if err != nil {
		return err
	}

	if err := writeFiles(files); err != nil {
		return err
	}

	return validateCreatedFiles()
}

// handleForce removes existing files if --force was specified
func handleForce() error {
	for _, name := range []string{"gavel.yml", "teams.csv"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		fmt.Printf("⚠️  Removing existing %s...\n", name)
		if err := os.Remove(name); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

// getTemplateFiles reads and processes all template files
func getTemplateFiles() ([]FileInfo, error) {
	files := []FileInfo{}

	// gavel.yml
	cfgTemplate, err := templatesFS.ReadFile("templates/gavel.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read gavel.yml template: %w", err)
	}
	files = append(files, FileInfo{
		Path:        "gavel.yml",
		Content:     cfgTemplate,
		Permissions: 0644,
	})

	// teams.csv
	teamsTemplate, err := templatesFS.ReadFile("templates/teams.csv.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read teams.csv template: %w", err)
	}
	files = append(files, FileInfo{
		Path:        "teams.csv",
		Content:     teamsTemplate,
		Permissions: 0644,
	})

	return files, nil
}

// writeFiles writes all template files to disk
func writeFiles(files []FileInfo) error {
	for _, file := range files {
		if err := os.WriteFile(file.Path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}

	return nil
}

// validateCreatedFiles runs the real loaders over the generated project so
// a broken template never ships silently.
func validateCreatedFiles() error {
	cfg, err := config.Load("gavel.yml")
	if err != nil {
		return fmt.Errorf("created gavel.yml does not load: %w", err)
	}

	if _, err := roster.Load("teams.csv", cfg.Columns()); err != nil {
		return fmt.Errorf("created teams.csv does not load: %w", err)
	}

	return nil
}

// PrintSuccess prints the success message with created files
func PrintSuccess() {
	fmt.Println("\n✅ Successfully initialized gavel project!")
	fmt.Println("\nCreated:")
	fmt.Println("  ✓ gavel.yml")
	fmt.Println("  ✓ teams.csv")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Replace teams.csv with your hackathon submission export")
	fmt.Println("  2. Adjust judging times and rooms in gavel.yml")
	fmt.Println("  3. Run 'gavel run -i teams.csv' to generate schedules")
}
