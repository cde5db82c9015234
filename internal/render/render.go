// Package render draws generated schedules as terminal tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hackjudge/gavel/internal/roster"
	"github.com/hackjudge/gavel/pkg/schedule"
	"github.com/olekukonko/tablewriter"
)

// clockFormat is the 12-hour display format used for session times.
const clockFormat = "03:04 PM"

// Overview writes the run summary block shown above the schedule tables.
func Overview(w io.Writer, stats schedule.Stats) {
	fmt.Fprintln(w, "Judging Schedule")
	fmt.Fprintf(w, "  Date:                  %s\n", stats.Start.Format("Monday, January 02, 2006"))
	fmt.Fprintf(w, "  General Judging Start: %s\n", stats.Start.Format(clockFormat))
	fmt.Fprintf(w, "  General Judging End:   %s\n", stats.GeneralEnd.Format(clockFormat))
	fmt.Fprintf(w, "  Category Judging End:  %s\n", stats.End.Format(clockFormat))
	fmt.Fprintf(w, "  Total Teams:           %d\n", stats.TotalTeams)
}

// AggregateNote explains which bounty labels share the dedicated room.
func AggregateNote(w io.Writer, policy schedule.AggregatePolicy) {
	if policy.Label == "" {
		return
	}
	fmt.Fprintf(w, "\n%s Categories\n", policy.Label)
	fmt.Fprintf(w, "Teams entering these bounties share a dedicated room when at least %d qualify:\n", policy.Threshold)
	fmt.Fprintf(w, "%s\n", strings.Join(policy.Members, ", "))
}

// GeneralTables writes one table per judging room in ascending room order.
func GeneralTables(w io.Writer, sched schedule.Schedule) error {
	fmt.Fprintf(w, "\n== GENERAL JUDGING SCHEDULE ==\n")

	for _, room := range sched.RoomNumbers() {
		sessions := sched.Rooms[room]
		fmt.Fprintf(w, "\nRoom %d - %d teams\n", room, len(sessions))

		if len(sessions) == 0 {
			fmt.Fprintln(w, "No teams assigned to this room")
			continue
		}

		table := tablewriter.NewTable(w)
		table.Header([]string{"Room", "Team", "Start Time", "Categories"})
		for _, s := range sessions {
			if err := table.Append([]string{
				strconv.Itoa(room),
				s.TeamName,
				s.Start.Format(clockFormat),
				strings.Join(s.Categories, ", "),
			}); err != nil {
				return fmt.Errorf("failed to build room %d table: %w", room, err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render room %d table: %w", room, err)
		}
	}
	return nil
}

// CategoryTables writes one table per category track, skipping tracks with
// no eligible teams.
func CategoryTables(w io.Writer, sched schedule.Schedule) error {
	fmt.Fprintf(w, "\n== CATEGORY JUDGING SCHEDULES ==\n")

	for _, track := range sched.Categories {
		if len(track.Sessions) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s Category - %d teams\n", track.Label, len(track.Sessions))

		table := tablewriter.NewTable(w)
		table.Header([]string{"Category", "Team", "Start Time"})
		for _, s := range track.Sessions {
			if err := table.Append([]string{
				track.Label,
				s.TeamName,
				s.Start.Format(clockFormat),
			}); err != nil {
				return fmt.Errorf("failed to build %s table: %w", track.Label, err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render %s table: %w", track.Label, err)
		}
	}
	return nil
}

// Skips lists sessions that did not fit before the end of the judging day.
func Skips(w io.Writer, skips []schedule.Skip) {
	if len(skips) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d sessions did not fit before the end of day:\n", len(skips))
	for _, s := range skips {
		fmt.Fprintf(w, "  %s (%s) at %s\n", s.TeamName, trackName(s.Track), s.Start.Format(clockFormat))
	}
}

// trackName labels a skip's track for display. Room tracks are stored as
// bare numbers.
func trackName(track string) string {
	if _, err := strconv.Atoi(track); err == nil {
		return "Room " + track
	}
	return track
}

// Labels writes the distinct category labels found in a roster with team
// counts, one row per label. When an aggregate grouping is configured, member
// labels are marked with the group they are judged under.
func Labels(w io.Writer, labels []roster.LabelCount, policy schedule.AggregatePolicy) error {
	table := tablewriter.NewTable(w)

	grouped := policy.Label != ""
	if grouped {
		table.Header([]string{"Category", "Teams", "Judged As"})
	} else {
		table.Header([]string{"Category", "Teams"})
	}

	for _, row := range labels {
		cells := []string{row.Label, strconv.Itoa(row.Teams)}
		if grouped {
			group := row.Label
			if policy.Member(row.Label) {
				group = policy.Label
			}
			cells = append(cells, group)
		}
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("failed to build category table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render category table: %w", err)
	}
	return nil
}

// Clock formats a session time the way the tables do, e.g. "10:30 AM".
func Clock(t time.Time) string {
	return t.Format(clockFormat)
}
