package pipeline

import "time"

// Window is the inclusive report-date range a fundamentals record must
// fall in to be ranked.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the window, bounds included
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}
