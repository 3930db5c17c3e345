// Package geometry maps points in time and durations onto a horizontal
// 24-hour axis, expressed as percentages of the axis width.
package geometry

import (
	"time"

	"github.com/existflow/timeline/internal/logger"
	"github.com/existflow/timeline/internal/model"
)

const minutesPerDay = 24 * 60

// PositionFraction returns the horizontal position of a point in time on
// the 24-hour axis, in [0, 100). Computed from the local-time hour and
// minute components, so any valid timestamp yields a value in range.
func PositionFraction(t time.Time) float64 {
	lt := t.Local()
	hours := float64(lt.Hour()) + float64(lt.Minute())/60
	return hours / 24 * 100
}

// WidthFraction returns the width of an activity on the 24-hour axis as a
// percentage. The duration field wins; when it is zero the start/end span
// is used instead. An activity carrying neither (possible only in imported
// legacy data) renders zero-width, logged but never fatal.
func WidthFraction(a model.Activity) float64 {
	minutes := float64(a.Duration)
	if minutes == 0 {
		if !a.StartTime.IsZero() && !a.EndTime.IsZero() && a.EndTime.After(a.StartTime) {
			minutes = a.EndTime.Sub(a.StartTime).Minutes()
		} else {
			logger.Warn("activity has no usable duration, rendering zero width", "id", a.ID)
			return 0
		}
	}
	return minutes / minutesPerDay * 100
}

// GridHour is one tick mark on the 24-hour axis.
type GridHour struct {
	Hour     int
	Fraction float64 // position in [0, 100)
}

// GridHours returns the eight 3-hour tick marks (00:00 through 21:00).
func GridHours() []GridHour {
	marks := make([]GridHour, 0, 8)
	for h := 0; h < 24; h += 3 {
		marks = append(marks, GridHour{Hour: h, Fraction: float64(h) / 24 * 100})
	}
	return marks
}
