package season

import "time"

// Season is a bounded time window scoping points and rankings independently
// from all-time totals. A nil EndDate means the season is still running.
type Season struct {
	ID          string
	Year        int
	Name        string
	StartDate   time.Time
	EndDate     *time.Time
	Active      bool
	Description string
}

// Contains reports whether t falls inside [StartDate, EndDate).
func (s Season) Contains(t time.Time) bool {
	if t.Before(s.StartDate) {
		return false
	}
	if s.EndDate == nil {
		return true
	}
	return t.Before(*s.EndDate)
}
