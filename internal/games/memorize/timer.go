package memorize

import "time"

// baseWave is the nominal wave length at speed 1.
const baseWave = 7 * time.Second

// Timer tracks the session budget.
type Timer struct {
	Start    time.Time
	Total    time.Duration // Session length
	Wave     time.Duration // How long a static wave stays on screen
	Last     time.Duration // No wave is replaced after this much time
	Interval time.Time     // Start of the current static wave slot
}

// NewTimer builds the timer for a session of total seconds at speed.
// The wave length is twice baseWave/speed and the spawn cutoff is one
// baseWave/speed before the end.
func NewTimer(start time.Time, total, speed int) Timer {
	base := time.Duration(float64(baseWave) / float64(speed))
	return Timer{
		Start:    start,
		Total:    time.Duration(total) * time.Second,
		Wave:     base * 2,
		Last:     time.Duration(total)*time.Second - base,
		Interval: start,
	}
}

// Elapsed returns the time since the session started.
func (t Timer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.Start)
}

// HasTimeLeft reports whether the budget is not yet spent.
func (t Timer) HasTimeLeft(now time.Time) bool {
	return t.Elapsed(now) < t.Total
}

// BeforeCutoff reports whether waves may still be replaced.
func (t Timer) BeforeCutoff(now time.Time) bool {
	return t.Elapsed(now) < t.Last
}

// Remaining returns the unspent budget, never negative.
func (t Timer) Remaining(now time.Time) time.Duration {
	return max(t.Total-t.Elapsed(now), 0)
}

// slotExpired reports whether the current static wave slot is over.
func (t Timer) slotExpired(now time.Time) bool {
	return now.After(t.Interval.Add(t.Wave))
}
