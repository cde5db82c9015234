package schedule

import (
	"strconv"
	"time"
)

// LaneResult is the output of the general judging phase.
type LaneResult struct {
	Rooms  map[int][]Session // Room number → sessions, back-to-back per room
	End    time.Time         // Latest end across all rooms
	Ledger Ledger            // One booking per scheduled session
	Skips  []Skip            // Sessions dropped at the day boundary
}

// AllocateLanes distributes teams across opts.Rooms parallel judging rooms
// and lays each room's sessions out back-to-back from opts.Start, with
// opts.Buffer between consecutive sessions. Rooms run in parallel and each
// team appears in exactly one room, so this phase performs no conflict
// checking.
//
// Teams matching the aggregate policy are routed to the highest-numbered
// room when at least opts.Aggregate.Threshold of them exist and more than
// one room is available; otherwise they are folded back into the general
// pool. The remaining teams are split as evenly as possible across the
// remaining rooms, preserving input order within each room.
//
// An empty room contributes opts.Start, not a computed end, to End.
func AllocateLanes(teams []Team, opts Options) *LaneResult {
	res := &LaneResult{
		Rooms:  make(map[int][]Session, opts.Rooms),
		End:    opts.Start,
		Ledger: make(Ledger, len(teams)),
	}

	assignments := partition(teams, opts)

	for room := 1; room <= opts.Rooms; room++ {
		track := strconv.Itoa(room)
		sessions := []Session{}
		cursor := opts.Start

		for _, team := range assignments[room] {
			end := cursor.Add(opts.GeneralDuration)
			if !opts.DayEnd.IsZero() && end.After(opts.DayEnd) {
				res.Skips = append(res.Skips, Skip{
					TeamID:   team.ID,
					TeamName: team.Name,
					Track:    track,
					Start:    cursor,
					End:      end,
				})
				continue
			}

			sessions = append(sessions, Session{
				TeamID:     team.ID,
				TeamName:   team.Name,
				Kind:       KindGeneral,
				Track:      track,
				Categories: team.Categories,
				Start:      cursor,
				End:        end,
			})
			res.Ledger.Book(team.ID, Interval{Start: cursor, End: end, Track: track})
			cursor = end.Add(opts.Buffer)
		}

		res.Rooms[room] = sessions
		if n := len(sessions); n > 0 && sessions[n-1].End.After(res.End) {
			res.End = sessions[n-1].End
		}
	}

	return res
}

// partition assigns teams to 1-based room numbers. When enough
// aggregate-eligible teams exist they take over the highest-numbered room
// and everyone else is spread over the rest; otherwise all teams are spread
// over all rooms in input order.
func partition(teams []Team, opts Options) map[int][]Team {
	assignments := make(map[int][]Team, opts.Rooms)

	aggregate, general := splitAggregate(teams, opts.Aggregate)

	if opts.Rooms > 1 && len(aggregate) > 0 && len(aggregate) >= opts.Aggregate.Threshold {
		assignments[opts.Rooms] = aggregate
		for i, chunk := range splitEven(general, opts.Rooms-1) {
			assignments[i+1] = chunk
		}
		return assignments
	}

	// Too few aggregate teams for a dedicated room; they keep their
	// original positions in the general pool.
	for i, chunk := range splitEven(teams, opts.Rooms) {
		assignments[i+1] = chunk
	}
	return assignments
}

// splitAggregate separates the teams eligible for the aggregate category
// from the rest, preserving input order in both halves.
func splitAggregate(teams []Team, policy AggregatePolicy) (aggregate, general []Team) {
	for _, team := range teams {
		if policy.Matches(team.Categories) {
			aggregate = append(aggregate, team)
		} else {
			general = append(general, team)
		}
	}
	return aggregate, general
}

// splitEven divides teams into lanes chunks in order: each lane receives
// len(teams)/lanes teams and the first len(teams)%lanes lanes receive one
// extra.
func splitEven(teams []Team, lanes int) [][]Team {
	base := len(teams) / lanes
	extra := len(teams) % lanes

	chunks := make([][]Team, lanes)
	next := 0
	for i := range chunks {
		count := base
		if i < extra {
			count++
		}
		chunks[i] = teams[next : next+count]
		next += count
	}
	return chunks
}
