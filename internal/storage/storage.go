// Package storage provides the durable string-keyed store the timeline
// persists into. The rest of the application treats it as opaque get/set.
package storage

// Keys for the two persisted collections.
const (
	KeyActivities   = "timelineActivities"
	KeyLaunchPoints = "timelineLaunchPoints"
)

// Store is a durable string-keyed value store.
type Store interface {
	// Get returns the value for key, and whether the key was present.
	Get(key string) (string, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error
	Close() error
}
