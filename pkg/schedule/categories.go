package schedule

import (
	"sort"
	"time"
)

// CategoryResult is the output of the category judging phase.
type CategoryResult struct {
	Tracks []CategoryTrack // In processing order: aggregate first, remainder sorted
	Skips  []Skip          // Sessions dropped at the day boundary
}

// AllocateCategories places every team into each award category it entered,
// on a single serialized timeline beginning at start. The aggregate category
// is processed first, then the remaining labels in sorted order; each
// category picks up where the previous one left off plus the buffer, and a
// category with no sessions leaves the cursor untouched.
//
// Every proposed slot is resolved against the team's bookings in ledger, so
// a team already booked nearby is pushed forward rather than double-booked.
// Committed sessions are appended to ledger, which the caller shares with
// the general phase.
func AllocateCategories(teams []Team, start time.Time, ledger Ledger, opts Options) *CategoryResult {
	res := &CategoryResult{}

	labels := categoryLabels(teams, opts.Aggregate)
	eligible := eligibleTeams(teams, opts.Aggregate)

	cursor := start
	for _, label := range labels {
		track := CategoryTrack{Label: label}
		current := cursor

		for _, team := range eligible[label] {
			resolved := Resolve(current, opts.CategoryDuration, opts.Buffer, ledger.Bookings(team.ID))
			end := resolved.Add(opts.CategoryDuration)

			if !opts.DayEnd.IsZero() && end.After(opts.DayEnd) {
				res.Skips = append(res.Skips, Skip{
					TeamID:   team.ID,
					TeamName: team.Name,
					Track:    label,
					Start:    resolved,
					End:      end,
				})
				continue
			}

			track.Sessions = append(track.Sessions, Session{
				TeamID:     team.ID,
				TeamName:   team.Name,
				Kind:       KindCategory,
				Track:      label,
				Categories: sessionLabels(team, label, opts.Aggregate),
				Start:      resolved,
				End:        end,
			})
			ledger.Book(team.ID, Interval{Start: resolved, End: end, Track: label})
			current = end.Add(opts.Buffer)
		}

		if n := len(track.Sessions); n > 0 {
			cursor = track.Sessions[n-1].End.Add(opts.Buffer)
		}
		res.Tracks = append(res.Tracks, track)
	}

	return res
}

// categoryLabels returns the processing order for category judging: the
// aggregate label first (when one is configured), then every other distinct
// label across all teams in sorted order. Labels belonging to the aggregate
// set never appear on their own.
func categoryLabels(teams []Team, policy AggregatePolicy) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, team := range teams {
		for _, label := range team.Categories {
			if policy.Member(label) || seen[label] {
				continue
			}
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	if policy.Label == "" {
		return labels
	}
	return append([]string{policy.Label}, labels...)
}

// eligibleTeams maps each category label to the teams entered in it, in
// input order. A team entered in several categories appears under each of
// them; a team matching any aggregate member label appears under the
// aggregate label exactly once.
func eligibleTeams(teams []Team, policy AggregatePolicy) map[string][]Team {
	eligible := make(map[string][]Team)
	for _, team := range teams {
		if policy.Label != "" && policy.Matches(team.Categories) {
			eligible[policy.Label] = append(eligible[policy.Label], team)
		}
		for _, label := range team.Categories {
			if policy.Member(label) {
				continue
			}
			eligible[label] = append(eligible[label], team)
		}
	}
	return eligible
}

// sessionLabels returns the labels shown on a category session: the team's
// aggregate sub-labels for the aggregate track, or just the label itself.
func sessionLabels(team Team, label string, policy AggregatePolicy) []string {
	if policy.Label != "" && label == policy.Label {
		return policy.Subset(team.Categories)
	}
	return []string{label}
}
