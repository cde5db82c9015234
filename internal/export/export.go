// Package export writes generated schedules to CSV files for printing and
// sharing with judges.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/hackjudge/gavel/pkg/schedule"
)

// clockFormat is the 12-hour display format used in exported files.
const clockFormat = "03:04 PM"

type generalRow struct {
	Room       int    `csv:"Room"`
	Team       string `csv:"Team"`
	StartTime  string `csv:"Start Time"`
	Categories string `csv:"Categories"`
}

type roomRow struct {
	Room      int    `csv:"Room"`
	Team      string `csv:"Team"`
	StartTime string `csv:"Start Time"`
}

type categoryRow struct {
	Category  string `csv:"Category"`
	Team      string `csv:"Team"`
	StartTime string `csv:"Start Time"`
}

type teamRow struct {
	Team        string `csv:"Team"`
	SessionType string `csv:"Session Type"`
	Location    string `csv:"Location"`
	StartTime   string `csv:"Start Time"`
}

// Schedules writes the CSV schedule files into dir, creating the directory
// if needed, and returns the paths written. Empty rooms still get a file so
// every judging room has a printout; empty category tracks are skipped.
func Schedules(sched schedule.Schedule, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var files []string
	rooms := sched.RoomNumbers()

	// Master general schedule across all rooms.
	var master []generalRow
	for _, room := range rooms {
		for _, s := range sched.Rooms[room] {
			master = append(master, generalRow{
				Room:       room,
				Team:       s.TeamName,
				StartTime:  s.Start.Format(clockFormat),
				Categories: strings.Join(s.Categories, ", "),
			})
		}
	}
	path := filepath.Join(dir, "general_schedule.csv")
	if err := writeCSV(path, &master); err != nil {
		return nil, err
	}
	files = append(files, path)

	// One schedule per judging room.
	for _, room := range rooms {
		rows := make([]roomRow, 0, len(sched.Rooms[room]))
		for _, s := range sched.Rooms[room] {
			rows = append(rows, roomRow{
				Room:      room,
				Team:      s.TeamName,
				StartTime: s.Start.Format(clockFormat),
			})
		}
		path := filepath.Join(dir, fmt.Sprintf("room_%d_schedule.csv", room))
		if err := writeCSV(path, &rows); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	// One schedule per category track with eligible teams.
	for _, track := range sched.Categories {
		if len(track.Sessions) == 0 {
			continue
		}
		rows := make([]categoryRow, 0, len(track.Sessions))
		for _, s := range track.Sessions {
			rows = append(rows, categoryRow{
				Category:  track.Label,
				Team:      s.TeamName,
				StartTime: s.Start.Format(clockFormat),
			})
		}
		path := filepath.Join(dir, safeName(track.Label)+"_schedule.csv")
		if err := writeCSV(path, &rows); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	// Team lookup covering every session a team has.
	path = filepath.Join(dir, "team_schedule.csv")
	lookup := teamLookup(sched, rooms)
	if err := writeCSV(path, &lookup); err != nil {
		return nil, err
	}
	files = append(files, path)

	return files, nil
}

// teamLookup flattens both phases into one list ordered by team ID and then
// session start, so a team can find all its sessions in one place.
func teamLookup(sched schedule.Schedule, rooms []int) []teamRow {
	type entry struct {
		id    string
		start time.Time
		row   teamRow
	}

	var entries []entry
	for _, room := range rooms {
		for _, s := range sched.Rooms[room] {
			entries = append(entries, entry{
				id:    s.TeamID,
				start: s.Start,
				row: teamRow{
					Team:        s.TeamName,
					SessionType: string(schedule.KindGeneral),
					Location:    fmt.Sprintf("Room %d", room),
					StartTime:   s.Start.Format(clockFormat),
				},
			})
		}
	}
	for _, track := range sched.Categories {
		for _, s := range track.Sessions {
			entries = append(entries, entry{
				id:    s.TeamID,
				start: s.Start,
				row: teamRow{
					Team:        s.TeamName,
					SessionType: track.Label,
					Location:    track.Label + " Judging",
					StartTime:   s.Start.Format(clockFormat),
				},
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].id != entries[j].id {
			return entries[i].id < entries[j].id
		}
		return entries[i].start.Before(entries[j].start)
	})

	rows := make([]teamRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.row)
	}
	return rows
}

// writeCSV marshals rows into a new file at path.
func writeCSV(path string, rows any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// safeName makes a category label usable as a file name.
func safeName(label string) string {
	return strings.NewReplacer("/", "-", "\\", "-").Replace(label)
}
