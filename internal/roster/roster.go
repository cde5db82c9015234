// Package roster loads the team roster from a hackathon submission export.
// Each CSV row becomes one schedule.Team; the track and bounty cells are
// comma-separated award category labels.
package roster

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/hackjudge/gavel/pkg/schedule"
)

// Columns names the roster CSV columns to read.
type Columns struct {
	ID     string // Team identifier; blank cells get a generated UUID
	Name   string // Team display name; rows without one are skipped
	Track  string // Comma-separated track labels
	Bounty string // Comma-separated sponsor bounty labels
}

// Load reads teams from a roster CSV file.
func Load(path string, cols Columns) ([]schedule.Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	return Read(f, cols)
}

// Read parses roster rows from r. Rows without a team name are skipped, and
// an error is returned when no usable rows remain.
func Read(r io.Reader, cols Columns) ([]schedule.Team, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid team data found in the roster")
	}

	if err := checkColumns(rows[0], cols); err != nil {
		return nil, err
	}

	var teams []schedule.Team
	for _, row := range rows {
		name := strings.TrimSpace(row[cols.Name])
		if name == "" {
			continue
		}

		id := strings.TrimSpace(row[cols.ID])
		if id == "" {
			id = uuid.New().String()
		}

		labels := splitLabels(row[cols.Track])
		labels = append(labels, splitLabels(row[cols.Bounty])...)

		teams = append(teams, schedule.Team{
			ID:         id,
			Name:       name,
			Categories: dedupe(labels),
		})
	}

	if len(teams) == 0 {
		return nil, fmt.Errorf("no valid team data found in the roster")
	}

	return teams, nil
}

// checkColumns verifies the required headers are present, reporting every
// missing one at once.
func checkColumns(row map[string]string, cols Columns) error {
	var missing []string
	for _, col := range []string{cols.ID, cols.Name, cols.Track, cols.Bounty} {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("roster is missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// splitLabels splits a comma-separated cell into clean labels, dropping
// blanks and "n/a" placeholders.
func splitLabels(cell string) []string {
	var labels []string
	for _, part := range strings.Split(cell, ",") {
		label := strings.TrimSpace(part)
		if label == "" || strings.EqualFold(label, "n/a") {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// dedupe drops repeated labels, keeping first-occurrence order so two runs
// over the same roster always produce the same team list.
func dedupe(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, label := range labels {
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}
