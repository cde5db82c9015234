// Package schedule provides the two-phase judging scheduler behind gavel.
//
// # Overview
//
// A scheduling run turns a list of hackathon teams into a complete judging
// timetable: every team pitches once in one of N parallel general judging
// rooms, and is then re-inserted into each award category it entered on a
// single serialized category timeline. The scheduler guarantees that no team
// is ever booked into two sessions closer together than the configured
// buffer.
//
// # Two-Phase Model
//
// Phase one (AllocateLanes) partitions teams across rooms and lays each
// room's sessions out back-to-back. Rooms run in parallel and a team appears
// in exactly one room, so this phase needs no conflict checking. Teams
// eligible for the aggregate award cluster are routed to the highest-numbered
// room when enough of them exist to fill it; otherwise they stay in the
// general pool.
//
// Phase two (AllocateCategories) walks the award categories one at a time on
// a shared timeline that begins after general judging plus a break. The
// aggregate category always goes first, then the remaining labels in sorted
// order. Every proposed slot is checked against the team's booking ledger
// and pushed forward until it clears all existing bookings by at least the
// buffer (Resolve).
//
// # Booking Ledger
//
// The Ledger is the single source of truth for conflict detection. Phase one
// seeds it with one booking per general session; phase two consults it before
// every placement and appends each committed category session. Bookings only
// ever accumulate - nothing is removed or shortened once recorded.
//
// # Usage Example
//
//	teams := []schedule.Team{
//		{ID: "42", Name: "Rubber Duck", Categories: []string{"Best Design"}},
//	}
//
//	result, err := schedule.Generate(teams, schedule.Options{
//		Start:            start,
//		Rooms:            6,
//		GeneralDuration:  8 * time.Minute,
//		CategoryDuration: 8 * time.Minute,
//		Buffer:           8 * time.Minute,
//		Break:            30 * time.Minute,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, room := range result.Schedule.RoomNumbers() {
//		for _, s := range result.Schedule.Rooms[room] {
//			fmt.Println(room, s.TeamName, s.Start)
//		}
//	}
//
// A run is a pure function of its inputs: identical teams and options always
// produce an identical Result, so re-running the scheduler is safe and
// reproducible.
package schedule
