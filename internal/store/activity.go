// Package store holds the in-memory collections backing the timeline:
// activities and launch points, both insertion-ordered.
package store

import (
	"sort"
	"time"

	"github.com/existflow/timeline/internal/model"
)

// ActivityStore is the in-memory activity collection. Activities are kept
// in insertion order and are immutable once added; the only bulk mutation
// is the full replace used by import.
type ActivityStore struct {
	activities []model.Activity
	lastID     int64
}

// NewActivityStore returns an empty activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

// Add resolves a draft and appends the resulting activity. A failed
// resolution leaves the store unchanged.
func (s *ActivityStore) Add(d model.Draft) (model.Activity, error) {
	a, err := d.Resolve(s.nextID())
	if err != nil {
		return model.Activity{}, err
	}
	s.activities = append(s.activities, a)
	s.lastID = a.ID
	return a, nil
}

// nextID derives a fresh id from the wall clock, bumping past the last
// issued id when two creations land in the same millisecond.
func (s *ActivityStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}

// All returns the activities in insertion order.
func (s *ActivityStore) All() []model.Activity {
	out := make([]model.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// FilterByDate returns the activities whose start time falls within the
// given calendar date (local time, inclusive bounds), in chronological
// order by start time. Ties keep insertion order.
func (s *ActivityStore) FilterByDate(date string) []model.Activity {
	start, end, err := model.DayBounds(date)
	if err != nil {
		return nil
	}

	var out []model.Activity
	for _, a := range s.activities {
		if !a.StartTime.Before(start) && !a.StartTime.After(end) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// ReplaceAll swaps in an entirely new collection. Used by import; there is
// no merge.
func (s *ActivityStore) ReplaceAll(activities []model.Activity) {
	s.activities = make([]model.Activity, len(activities))
	copy(s.activities, activities)

	s.lastID = 0
	for _, a := range s.activities {
		if a.ID > s.lastID {
			s.lastID = a.ID
		}
	}
}

// Len returns the number of stored activities.
func (s *ActivityStore) Len() int {
	return len(s.activities)
}
