package schedule

import (
	"sort"
	"time"
)

// SessionKind distinguishes general room judging from category judging.
type SessionKind string

const (
	// KindGeneral marks a session from the parallel general judging round
	KindGeneral SessionKind = "General"

	// KindCategory marks a session from the serialized category round
	KindCategory SessionKind = "Category"
)

// Team is one hackathon team as supplied by the roster loader.
// Teams are immutable once loaded. Categories holds the distinct award
// labels the team entered, in submission order; it may be empty.
type Team struct {
	ID         string   // Opaque unique identifier
	Name       string   // Display name
	Categories []string // Distinct award category labels
}

// Session is a single judging appointment for one team on one track.
// Sessions are created exactly once and never mutated afterwards.
type Session struct {
	TeamID     string      // Team being judged
	TeamName   string      // Display name, carried for exporters
	Kind       SessionKind // General or Category
	Track      string      // Room number ("3") or category label ("MLH")
	Categories []string    // Labels relevant to this session
	Start      time.Time   // Inclusive start
	End        time.Time   // Start plus the track's session duration
}

// Interval is one committed booking in a team's ledger.
type Interval struct {
	Start time.Time // Session start
	End   time.Time // Session end
	Track string    // Track that made the booking
}

// Ledger maps team IDs to their committed bookings, in booking order.
// It is the single source of truth the conflict resolver consults: phase one
// seeds it, phase two reads and extends it. Bookings only ever accumulate;
// nothing is removed or shortened once recorded.
type Ledger map[string][]Interval

// Book appends a booking for a team.
func (l Ledger) Book(teamID string, iv Interval) {
	l[teamID] = append(l[teamID], iv)
}

// Bookings returns a team's committed bookings in booking order.
// The returned slice is the ledger's own; callers must not modify it.
func (l Ledger) Bookings(teamID string) []Interval {
	return l[teamID]
}

// CategoryTrack is the ordered session list for one award category.
// Sessions appear in assignment order, which is non-decreasing in start
// time by construction.
type CategoryTrack struct {
	Label    string    // Category label, or the aggregate label
	Sessions []Session // May be empty when no team entered the category
}

// Schedule is the combined output of both scheduling phases.
type Schedule struct {
	Rooms      map[int][]Session // Room number → back-to-back general sessions
	Categories []CategoryTrack   // Category tracks in processing order
}

// RoomNumbers returns the room numbers in ascending order.
func (s *Schedule) RoomNumbers() []int {
	nums := make([]int, 0, len(s.Rooms))
	for n := range s.Rooms {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// CategoryLabels returns the category labels in processing order, including
// labels whose track ended up empty.
func (s *Schedule) CategoryLabels() []string {
	labels := make([]string, len(s.Categories))
	for i, track := range s.Categories {
		labels[i] = track.Label
	}
	return labels
}

// Track returns the session list for a category label.
func (s *Schedule) Track(label string) ([]Session, bool) {
	for _, track := range s.Categories {
		if track.Label == label {
			return track.Sessions, true
		}
	}
	return nil, false
}

// Stats is the read-only summary computed once after assembly.
type Stats struct {
	Start      time.Time   // Scheduled start of general judging
	GeneralEnd time.Time   // Latest end across all general rooms
	End        time.Time   // Latest end across the whole schedule
	TotalTeams int         // Number of teams supplied to the run
	RoomLoads  map[int]int // Room number → session count
	Categories []string    // Labels in processing order, empty tracks included
}

// Skip records a session that was dropped because it would have run past the
// configured end-of-day boundary.
type Skip struct {
	TeamID   string    // Team that lost the session
	TeamName string    // Display name
	Track    string    // Room number or category label
	Start    time.Time // Start the session would have had
	End      time.Time // End the session would have had
}

// Result is the complete outcome of a scheduling run.
type Result struct {
	Schedule *Schedule // Combined room and category tracks
	Stats    Stats     // Summary statistics
	Skips    []Skip    // Sessions dropped at the day boundary, in scheduling order
}
