package model

import (
	"fmt"
	"time"
)

// DefaultColor is the color assigned to activities created without one.
const DefaultColor = "#4A90E2"

// Layouts for the date and clock strings accepted from forms and flags.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Activity is a fully resolved, immutable timeline entry. All three time
// fields are populated and consistent: EndTime - StartTime == Duration
// minutes. Pending form input lives in Draft, never here.
type Activity struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"` // minutes
	Color     string    `json:"color"`
	Comment   string    `json:"comment"`
	// LaunchPoint is a copy taken at creation time, not a live reference;
	// later edits to the launch point list do not touch past activities.
	LaunchPoint *LaunchPoint `json:"launchPoint"`
	Date        string       `json:"date"`
}

// ClockRange formats the start and end times for display.
func (a Activity) ClockRange() string {
	return a.StartTime.Format(ClockLayout) + "–" + a.EndTime.Format(ClockLayout)
}

// DayBounds returns the inclusive local-time bounds of a calendar date,
// [date 00:00:00.000, date 23:59:59.999].
func DayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
	return start, end, nil
}
