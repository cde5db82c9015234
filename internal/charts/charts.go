// Package charts renders schedule visualizations: timeline charts for both
// judging phases and a room load bar chart.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/hackjudge/gavel/pkg/schedule"
)

// Generate writes the visualization files into dir, creating the directory
// if needed, and returns the paths written. The category timeline is only
// produced when at least one category track has sessions.
func Generate(sched schedule.Schedule, stats schedule.Stats, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var files []string

	// General phase timeline, one row per room.
	var rows []ganttRow
	for _, room := range sched.RoomNumbers() {
		rows = append(rows, ganttRow{
			label:    fmt.Sprintf("Room %d", room),
			sessions: sched.Rooms[room],
		})
	}
	path := filepath.Join(dir, "general_schedule_gantt.svg")
	if err := writeGantt(path, gantt{
		title:  "General Judging Schedule",
		origin: stats.Start,
		rows:   rows,
	}); err != nil {
		return nil, err
	}
	files = append(files, path)

	path = filepath.Join(dir, "room_load.png")
	if err := writeRoomLoad(path, stats); err != nil {
		return nil, err
	}
	files = append(files, path)

	// Category phase timeline, skipping tracks with no sessions.
	var catRows []ganttRow
	for _, track := range sched.Categories {
		if len(track.Sessions) == 0 {
			continue
		}
		catRows = append(catRows, ganttRow{label: track.Label, sessions: track.Sessions})
	}
	if len(catRows) > 0 {
		path = filepath.Join(dir, "category_schedule_gantt.svg")
		if err := writeGantt(path, gantt{
			title:  "Category Judging Schedule",
			origin: stats.GeneralEnd,
			rows:   catRows,
		}); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	return files, nil
}

// writeRoomLoad draws a bar chart of team counts per room.
func writeRoomLoad(path string, stats schedule.Stats) error {
	rooms := make([]int, 0, len(stats.RoomLoads))
	for room := range stats.RoomLoads {
		rooms = append(rooms, room)
	}
	sort.Ints(rooms)

	bars := make([]chart.Value, 0, len(rooms))
	for _, room := range rooms {
		bars = append(bars, chart.Value{
			Value: float64(stats.RoomLoads[room]),
			Label: fmt.Sprintf("Room %d", room),
		})
	}

	graph := chart.BarChart{
		Title: "Teams per Judging Room",
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render room load chart: %w", err)
	}
	return nil
}
