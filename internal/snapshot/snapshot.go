// Package snapshot serializes the full timeline state to the export
// document format and restores it from imported documents.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/existflow/timeline/internal/model"
)

// Document is the export file format. Import consumes only the two
// collections; extra fields are ignored.
type Document struct {
	Activities   []model.Activity    `json:"activities"`
	LaunchPoints []model.LaunchPoint `json:"launchPoints"`
	ExportDate   time.Time           `json:"exportDate"`
}

// Export builds the pretty-printed export document.
func Export(activities []model.Activity, points []model.LaunchPoint, now time.Time) ([]byte, error) {
	if activities == nil {
		activities = []model.Activity{}
	}
	if points == nil {
		points = []model.LaunchPoint{}
	}
	doc := Document{
		Activities:   activities,
		LaunchPoints: points,
		ExportDate:   now,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return data, nil
}

// Filename returns the export filename for the given day,
// timeline-data-YYYY-MM-DD.json.
func Filename(now time.Time) string {
	return "timeline-data-" + now.Format(model.DateLayout) + ".json"
}

// Parse decodes an import document. Malformed JSON or a document missing
// either collection fails with ErrImport; the caller must leave its state
// untouched in that case.
func Parse(data []byte) (Document, error) {
	// Distinguish "key absent" from "key present but empty" so a document
	// exported from an empty timeline still imports cleanly.
	var probe struct {
		Activities   json.RawMessage `json:"activities"`
		LaunchPoints json.RawMessage `json:"launchPoints"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %v", model.ErrImport, err)
	}
	if isAbsent(probe.Activities) {
		return Document{}, fmt.Errorf("%w: missing activities", model.ErrImport)
	}
	if isAbsent(probe.LaunchPoints) {
		return Document{}, fmt.Errorf("%w: missing launchPoints", model.ErrImport)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", model.ErrImport, err)
	}
	return doc, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
