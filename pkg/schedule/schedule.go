package schedule

import (
	"fmt"
	"time"
)

// AggregatePolicy groups several related sub-awards into one synthetic
// category so eligible teams are judged once instead of once per sub-award.
// The zero value disables grouping.
type AggregatePolicy struct {
	Label     string   // Synthetic label, e.g. "MLH"; empty disables grouping
	Members   []string // Concrete sub-award labels covered by the group
	Threshold int      // Minimum eligible teams for a dedicated general room
}

// Member reports whether label belongs to the aggregate set.
func (p AggregatePolicy) Member(label string) bool {
	for _, m := range p.Members {
		if m == label {
			return true
		}
	}
	return false
}

// Matches reports whether a team with the given labels is eligible for the
// aggregate category.
func (p AggregatePolicy) Matches(labels []string) bool {
	for _, label := range labels {
		if p.Member(label) {
			return true
		}
	}
	return false
}

// Subset returns the labels that belong to the aggregate set, preserving
// their order.
func (p AggregatePolicy) Subset(labels []string) []string {
	var subset []string
	for _, label := range labels {
		if p.Member(label) {
			subset = append(subset, label)
		}
	}
	return subset
}

// Options configures a scheduling run.
type Options struct {
	Start            time.Time       // Absolute start of general judging
	Rooms            int             // Number of parallel general judging rooms
	GeneralDuration  time.Duration   // Length of one general session
	CategoryDuration time.Duration   // Length of one category session
	Buffer           time.Duration   // Minimum idle time between sessions
	Break            time.Duration   // Gap between general and category judging
	Aggregate        AggregatePolicy // Sub-award grouping, optional
	DayEnd           time.Time       // Soft end-of-day boundary; zero disables it
}

// Validate checks that the options describe a runnable schedule.
func (o Options) Validate() error {
	if o.Start.IsZero() {
		return fmt.Errorf("start time must be set")
	}

	if o.Rooms < 1 {
		return fmt.Errorf("room count must be at least 1, got %d", o.Rooms)
	}

	if o.GeneralDuration <= 0 {
		return fmt.Errorf("general session duration must be positive, got %s", o.GeneralDuration)
	}

	if o.CategoryDuration <= 0 {
		return fmt.Errorf("category session duration must be positive, got %s", o.CategoryDuration)
	}

	if o.Buffer < 0 {
		return fmt.Errorf("buffer cannot be negative, got %s", o.Buffer)
	}

	if o.Break < 0 {
		return fmt.Errorf("break cannot be negative, got %s", o.Break)
	}

	if o.Aggregate.Label == "" && len(o.Aggregate.Members) > 0 {
		return fmt.Errorf("aggregate label cannot be empty when members are configured")
	}

	if !o.DayEnd.IsZero() && !o.DayEnd.After(o.Start) {
		return fmt.Errorf("end of day must be after the start time")
	}

	return nil
}

// Generate runs both scheduling phases and assembles the combined schedule
// with its statistics. Configuration problems and an empty team list are
// reported as errors before any scheduling happens; after that the run
// always completes, recording any day-boundary skips in the result.
func Generate(teams []Team, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("no teams to schedule")
	}

	lanes := AllocateLanes(teams, opts)
	cats := AllocateCategories(teams, lanes.End.Add(opts.Break), lanes.Ledger, opts)

	sched := &Schedule{
		Rooms:      lanes.Rooms,
		Categories: cats.Tracks,
	}

	end := lanes.End
	for _, track := range cats.Tracks {
		if n := len(track.Sessions); n > 0 && track.Sessions[n-1].End.After(end) {
			end = track.Sessions[n-1].End
		}
	}

	loads := make(map[int]int, len(lanes.Rooms))
	for room, sessions := range lanes.Rooms {
		loads[room] = len(sessions)
	}

	return &Result{
		Schedule: sched,
		Stats: Stats{
			Start:      opts.Start,
			GeneralEnd: lanes.End,
			End:        end,
			TotalTeams: len(teams),
			RoomLoads:  loads,
			Categories: sched.CategoryLabels(),
		},
		Skips: append(lanes.Skips, cats.Skips...),
	}, nil
}
