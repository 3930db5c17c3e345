// Package tracker wires the stores to durable storage. All user-facing
// operations go through it so every mutation resyncs storage, and so no
// write can happen before the initial load has completed.
package tracker

import (
	"fmt"
	"time"

	"github.com/existflow/timeline/internal/gateway"
	"github.com/existflow/timeline/internal/logger"
	"github.com/existflow/timeline/internal/model"
	"github.com/existflow/timeline/internal/snapshot"
	"github.com/existflow/timeline/internal/storage"
	"github.com/existflow/timeline/internal/store"
)

// Tracker owns the in-memory state of the application.
type Tracker struct {
	activities   *store.ActivityStore
	launchPoints *store.LaunchPointStore
	gateway      *gateway.Gateway

	// initialized flips after Load so a fresh process can never clobber
	// persisted data with its empty defaults.
	initialized bool
}

// New returns a tracker persisting into st. Call Load before mutating.
func New(st storage.Store) *Tracker {
	return &Tracker{
		activities:   store.NewActivityStore(),
		launchPoints: store.NewLaunchPointStore(),
		gateway:      gateway.New(st),
	}
}

// Load populates the stores from storage. Absent entries keep the
// defaults: no activities, the four seeded launch points.
func (t *Tracker) Load() error {
	activities, haveActivities, points, havePoints, err := t.gateway.Load()
	if err != nil {
		return fmt.Errorf("failed to load timeline data: %w", err)
	}
	if haveActivities {
		t.activities.ReplaceAll(activities)
	}
	if havePoints {
		t.launchPoints.ReplaceAll(points)
	}
	t.initialized = true
	logger.Info("timeline loaded",
		"activities", t.activities.Len(),
		"launchPoints", t.launchPoints.Len())
	return nil
}

// sync persists the current state. Writes are skipped until Load has run.
func (t *Tracker) sync() error {
	if !t.initialized {
		return nil
	}
	return t.gateway.Save(t.activities.All(), t.launchPoints.All())
}

// AddActivity resolves a draft, appends it and persists.
func (t *Tracker) AddActivity(d model.Draft) (model.Activity, error) {
	a, err := t.activities.Add(d)
	if err != nil {
		return model.Activity{}, err
	}
	if err := t.sync(); err != nil {
		return model.Activity{}, err
	}
	logger.Info("activity added", "id", a.ID, "date", a.Date, "duration", a.Duration)
	return a, nil
}

// CreateLaunchPoint appends a launch point and persists.
func (t *Tracker) CreateLaunchPoint(icon, label string) (model.LaunchPoint, error) {
	lp, err := t.launchPoints.Create(icon, label)
	if err != nil {
		return model.LaunchPoint{}, err
	}
	if err := t.sync(); err != nil {
		return model.LaunchPoint{}, err
	}
	logger.Info("launch point added", "id", lp.ID, "label", lp.Label)
	return lp, nil
}

// DeleteLaunchPoint removes a launch point by id and persists. Past
// activities keep their embedded copy of the tag.
func (t *Tracker) DeleteLaunchPoint(id int64) error {
	t.launchPoints.DeleteByID(id)
	return t.sync()
}

// Clear wipes all activities and resets launch points to the seeded
// defaults, persisting the result.
func (t *Tracker) Clear() error {
	t.activities.ReplaceAll(nil)
	t.launchPoints.ReplaceAll(model.DefaultLaunchPoints())
	return t.sync()
}

// ExportData builds the export document, sealed when a passphrase is
// given, and returns it with its suggested filename.
func (t *Tracker) ExportData(passphrase string) (string, []byte, error) {
	now := time.Now()
	data, err := snapshot.Export(t.activities.All(), t.launchPoints.All(), now)
	if err != nil {
		return "", nil, err
	}
	name := snapshot.Filename(now)
	if passphrase != "" {
		if data, err = snapshot.Seal(data, passphrase); err != nil {
			return "", nil, err
		}
		name += ".enc"
	}
	return name, data, nil
}

// Import parses a document and replaces both collections, persisting the
// result. Parsing happens in full before any state changes; a failure
// leaves the current state untouched.
func (t *Tracker) Import(data []byte, passphrase string) error {
	if snapshot.IsSealed(data) {
		plain, err := snapshot.Open(data, passphrase)
		if err != nil {
			return fmt.Errorf("%w: %v", model.ErrImport, err)
		}
		data = plain
	}

	doc, err := snapshot.Parse(data)
	if err != nil {
		return err
	}

	t.activities.ReplaceAll(doc.Activities)
	t.launchPoints.ReplaceAll(doc.LaunchPoints)
	if err := t.sync(); err != nil {
		return err
	}
	logger.Info("timeline imported",
		"activities", t.activities.Len(),
		"launchPoints", t.launchPoints.Len())
	return nil
}

// Activities returns all activities in insertion order.
func (t *Tracker) Activities() []model.Activity {
	return t.activities.All()
}

// ActivitiesOn returns the activities on a calendar date, chronologically.
func (t *Tracker) ActivitiesOn(date string) []model.Activity {
	return t.activities.FilterByDate(date)
}

// LaunchPoints returns all launch points in insertion order.
func (t *Tracker) LaunchPoints() []model.LaunchPoint {
	return t.launchPoints.All()
}
