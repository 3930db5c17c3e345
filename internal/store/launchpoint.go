package store

import (
	"strings"
	"time"

	"github.com/existflow/timeline/internal/model"
)

// LaunchPointStore is the in-memory launch point collection, seeded with
// the four defaults on first run.
type LaunchPointStore struct {
	points []model.LaunchPoint
	lastID int64
}

// NewLaunchPointStore returns a store seeded with the default launch
// points.
func NewLaunchPointStore() *LaunchPointStore {
	s := &LaunchPointStore{}
	s.ReplaceAll(model.DefaultLaunchPoints())
	return s
}

// Create validates and appends a new launch point. Empty or
// whitespace-only icon or label fails with ErrMissingField.
func (s *LaunchPointStore) Create(icon, label string) (model.LaunchPoint, error) {
	icon = strings.TrimSpace(icon)
	label = strings.TrimSpace(label)
	if icon == "" || label == "" {
		return model.LaunchPoint{}, model.ErrMissingField
	}

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	lp := model.LaunchPoint{ID: id, Icon: icon, Label: label}
	s.points = append(s.points, lp)
	s.lastID = id
	return lp, nil
}

// DeleteByID removes the launch point with the given id. Deleting an
// unknown id is a no-op, not an error.
func (s *LaunchPointStore) DeleteByID(id int64) {
	for i, lp := range s.points {
		if lp.ID == id {
			s.points = append(s.points[:i], s.points[i+1:]...)
			return
		}
	}
}

// All returns the launch points in insertion order.
func (s *LaunchPointStore) All() []model.LaunchPoint {
	out := make([]model.LaunchPoint, len(s.points))
	copy(out, s.points)
	return out
}

// ReplaceAll swaps in an entirely new collection. Used by import.
func (s *LaunchPointStore) ReplaceAll(points []model.LaunchPoint) {
	s.points = make([]model.LaunchPoint, len(points))
	copy(s.points, points)

	s.lastID = 0
	for _, lp := range s.points {
		if lp.ID > s.lastID {
			s.lastID = lp.ID
		}
	}
}

// Len returns the number of stored launch points.
func (s *LaunchPointStore) Len() int {
	return len(s.points)
}
