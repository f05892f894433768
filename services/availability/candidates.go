package availability

import "time"

// CandidateTimes generates step-spaced instants spanning [from, to], in chronological
// order. Used to build the candidate list handed to ResolveAvailableSlots.
func CandidateTimes(from, to time.Time, step time.Duration) []time.Time {
	if step <= 0 || to.Before(from) {
		return nil
	}
	var times []time.Time
	for t := from; !t.After(to); t = t.Add(step) {
		times = append(times, t)
	}
	return times
}
