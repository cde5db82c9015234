package schedule

import "time"

// Resolve pushes a proposed session start forward until the interval
// [start, start+duration) clears every booking in booked by at least buffer
// on both sides. It returns the proposal unchanged when no booking is in the
// way. A gap of exactly buffer is clear.
//
// The push is greedy: on the first conflicting booking found, the candidate
// start moves to that booking's end plus the buffer and the scan restarts
// from the beginning of the ledger. It never looks for an earlier gap and
// never moves a committed booking. Each push carries the candidate past one
// booking for good, so the loop terminates after at most len(booked) pushes.
func Resolve(proposed time.Time, duration, buffer time.Duration, booked []Interval) time.Time {
	start := proposed
	for moved := true; moved; {
		moved = false
		for _, b := range booked {
			if start.Before(b.End.Add(buffer)) && start.Add(duration).After(b.Start.Add(-buffer)) {
				start = b.End.Add(buffer)
				moved = true
				break
			}
		}
	}
	return start
}
