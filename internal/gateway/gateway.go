// Package gateway bridges the in-memory stores to durable storage. It is
// the only component that touches the storage keys.
package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/existflow/timeline/internal/logger"
	"github.com/existflow/timeline/internal/model"
	"github.com/existflow/timeline/internal/storage"
)

// Gateway serializes the two collections to their storage keys.
type Gateway struct {
	store storage.Store
}

// New returns a gateway over the given store.
func New(store storage.Store) *Gateway {
	return &Gateway{store: store}
}

// Load reads both collections from storage. An absent key yields a nil
// slice and false, telling the caller to keep its in-memory default. A
// malformed value is treated the same as an absent one: logged, defaults
// kept, never fatal.
func (g *Gateway) Load() (activities []model.Activity, haveActivities bool, points []model.LaunchPoint, havePoints bool, err error) {
	haveActivities, err = loadKey(g.store, storage.KeyActivities, &activities)
	if err != nil {
		return nil, false, nil, false, err
	}
	havePoints, err = loadKey(g.store, storage.KeyLaunchPoints, &points)
	if err != nil {
		return nil, false, nil, false, err
	}
	return activities, haveActivities, points, havePoints, nil
}

func loadKey[T any](store storage.Store, key string, out *[]T) (bool, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return false, fmt.Errorf("failed to load %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn("ignoring malformed persisted value", "key", key, "error", err)
		*out = nil
		return false, nil
	}
	return true, nil
}

// Save writes both collections to storage.
func (g *Gateway) Save(activities []model.Activity, points []model.LaunchPoint) error {
	if err := saveKey(g.store, storage.KeyActivities, activities); err != nil {
		return err
	}
	return saveKey(g.store, storage.KeyLaunchPoints, points)
}

func saveKey[T any](store storage.Store, key string, values []T) error {
	if values == nil {
		values = []T{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := store.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}
