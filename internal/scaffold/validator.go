package scaffold

import (
	"fmt"
	"os"
)

// CheckExisting checks if gavel.yml or teams.csv already exist.
// Returns an error if they do, nil otherwise
func CheckExisting() error {
	var existingFiles []string

	for _, name := range []string{"gavel.yml", "teams.csv"} {
		if _, err := os.Stat(name); err == nil {
			existingFiles = append(existingFiles, name)
		}
	}

	if len(existingFiles) > 0 {
		errMsg := "project already initialized\n\nFound existing"
		if len(existingFiles) == 1 {
			errMsg += fmt.Sprintf(": %s", existingFiles[0])
		} else {
			errMsg += " files:\n"
			for _, file := range existingFiles {
				errMsg += fmt.Sprintf("  - %s\n", file)
			}
		}
		errMsg += "\nUse 'gavel init --force' to reinitialize (this will overwrite existing configuration)"

		return fmt.Errorf("%s", errMsg)
	}

	return nil
}
