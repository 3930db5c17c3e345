package model

import (
	"fmt"
	"time"
)

// Draft is a pending activity: the raw form input before the missing time
// field has been derived. A Draft never enters a store; Resolve produces
// the Activity that does.
type Draft struct {
	StartClock  string // "HH:MM" local time, empty when unset
	EndClock    string // "HH:MM" local time, empty when unset
	Duration    *int   // minutes, nil when unset
	Date        string // "YYYY-MM-DD", anchors the clock times
	Color       string
	Comment     string
	LaunchPoint *LaunchPoint
}

// filled counts how many of the three time fields are set.
func (d Draft) filled() int {
	n := 0
	if d.StartClock != "" {
		n++
	}
	if d.EndClock != "" {
		n++
	}
	if d.Duration != nil {
		n++
	}
	return n
}

// Resolve derives the missing one of {start, end, duration} from the other
// two and returns the fully populated Activity. It fails with
// ErrInsufficientFields when fewer than two are set, and with
// ErrInvalidInput when the date or clock strings do not parse or the
// resolved range would be empty or run backwards.
func (d Draft) Resolve(id int64) (Activity, error) {
	if d.filled() < 2 {
		return Activity{}, ErrInsufficientFields
	}

	day, err := time.ParseInLocation(DateLayout, d.Date, time.Local)
	if err != nil {
		return Activity{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, d.Date)
	}

	var start, end time.Time
	if d.StartClock != "" {
		if start, err = atClock(day, d.StartClock); err != nil {
			return Activity{}, err
		}
	}
	if d.EndClock != "" {
		if end, err = atClock(day, d.EndClock); err != nil {
			return Activity{}, err
		}
	}

	var duration int
	switch {
	case d.StartClock != "" && d.EndClock != "":
		duration = int(end.Sub(start).Minutes())
	case d.StartClock != "" && d.Duration != nil:
		duration = *d.Duration
		end = start.Add(time.Duration(duration) * time.Minute)
	case d.EndClock != "" && d.Duration != nil:
		duration = *d.Duration
		start = end.Add(-time.Duration(duration) * time.Minute)
	default:
		return Activity{}, ErrInvalidInput
	}

	if duration <= 0 {
		return Activity{}, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	color := d.Color
	if color == "" {
		color = DefaultColor
	}

	// Copy the launch point so the activity keeps the tag as it was at
	// creation time.
	var lp *LaunchPoint
	if d.LaunchPoint != nil {
		cp := *d.LaunchPoint
		lp = &cp
	}

	return Activity{
		ID:          id,
		StartTime:   start,
		EndTime:     end,
		Duration:    duration,
		Color:       color,
		Comment:     d.Comment,
		LaunchPoint: lp,
		Date:        d.Date,
	}, nil
}

// atClock anchors an "HH:MM" clock string to the given day in local time.
func atClock(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad time %q", ErrInvalidInput, clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
