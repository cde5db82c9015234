package roster

import (
	"sort"

	"github.com/hackjudge/gavel/pkg/schedule"
)

// LabelCount pairs a category label with the number of teams entered in it.
type LabelCount struct {
	Label string
	Teams int
}

// Labels tallies the distinct category labels across teams, sorted
// alphabetically. Useful for checking which labels a roster actually uses
// before configuring an aggregate grouping.
func Labels(teams []schedule.Team) []LabelCount {
	counts := make(map[string]int)
	for _, team := range teams {
		for _, label := range team.Categories {
			counts[label]++
		}
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]LabelCount, 0, len(labels))
	for _, label := range labels {
		out = append(out, LabelCount{Label: label, Teams: counts[label]})
	}
	return out
}
