package model

// LaunchPoint is a user-defined tag (icon + label) describing how an
// activity began.
type LaunchPoint struct {
	ID    int64  `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// DefaultLaunchPoints returns the four launch points seeded on first run.
func DefaultLaunchPoints() []LaunchPoint {
	return []LaunchPoint{
		{ID: 1, Icon: "⚡", Label: "Spontaneous"},
		{ID: 2, Icon: "🌊", Label: "Flow"},
		{ID: 3, Icon: "🏋️", Label: "Pushed through"},
		{ID: 4, Icon: "🎯", Label: "Scheduled"},
	}
}
