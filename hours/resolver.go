package hours

import (
	"time"

	"caremap/config"
	"caremap/models"
)

// Status classifies a place at an instant.
type Status string

const (
	StatusOpen        Status = "open"
	StatusClosingSoon Status = "closing-soon"
	StatusClosed      Status = "closed"
)

// Color returns the marker color used for this status.
func (s Status) Color() string {
	switch s {
	case StatusOpen:
		return "#16A34A" // green
	case StatusClosingSoon:
		return "#FACC15" // yellow
	default:
		return "#9CA3AF" // gray
	}
}

// Label returns the display label for this status.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusClosingSoon:
		return "Closing soon"
	default:
		return "Closed"
	}
}

// Evaluation is the result of resolving a schedule at an instant. NextClose
// is set only when the active period has a close anchor.
type Evaluation struct {
	Status    Status
	NextClose *time.Time
}

// Resolve classifies a weekly schedule at the given instant. It is a total
// function: absent, empty, or degenerate schedules resolve to closed.
//
// Anchors are projected onto the calendar week containing at, keyed by
// weekday (Sunday=0, matching both the source data and time.Weekday). A close
// that projects before its open is advanced by seven days, which is how
// overnight periods (e.g. Saturday 22:00 to Sunday 02:00) stay contiguous
// under week-relative projection.
func Resolve(h *models.PlaceHours, at time.Time) Evaluation {
	if h == nil || len(h.Periods) == 0 {
		return Evaluation{Status: StatusClosed}
	}

	// First active period in input order wins.
	for _, p := range h.Periods {
		open := projectAnchor(p.Open, at)

		var close *time.Time
		if p.Close != nil {
			c := projectAnchor(*p.Close, at)
			if c.Equal(open) {
				// Zero-length window: never active.
				continue
			}
			if c.Before(open) {
				c = c.AddDate(0, 0, 7)
			}
			close = &c
		}

		if at.Before(open) {
			continue
		}
		if close != nil && !at.Before(*close) {
			// Close is a strict upper bound.
			continue
		}

		if close == nil {
			return Evaluation{Status: StatusOpen}
		}
		if close.Sub(at) <= config.CLOSING_SOON_THRESHOLD_MINUTES*time.Minute {
			return Evaluation{Status: StatusClosingSoon, NextClose: close}
		}
		return Evaluation{Status: StatusOpen, NextClose: close}
	}

	return Evaluation{Status: StatusClosed}
}

// projectAnchor maps a weekday/clock anchor onto a concrete instant in the
// week containing at, keeping at's location. time.Date normalizes the shifted
// day across month boundaries.
func projectAnchor(a models.TimeAnchor, at time.Time) time.Time {
	diff := a.Day - int(at.Weekday())
	return time.Date(at.Year(), at.Month(), at.Day()+diff, a.Hour, a.Minute, 0, 0, at.Location())
}
