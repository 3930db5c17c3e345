package gateway

import (
	"testing"
	"time"

	"github.com/existflow/timeline/internal/model"
	"github.com/existflow/timeline/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestLoadAbsentKeys(t *testing.T) {
	g := New(storage.NewMemory())

	_, haveActivities, _, havePoints, err := g.Load()
	require.NoError(t, err)
	require.False(t, haveActivities)
	require.False(t, havePoints)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := storage.NewMemory()
	g := New(st)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	activities := []model.Activity{{
		ID:          1704100000000,
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		Duration:    30,
		Color:       "#4A90E2",
		Comment:     "standup",
		LaunchPoint: &model.LaunchPoint{ID: 4, Icon: "🎯", Label: "Scheduled"},
		Date:        "2024-01-01",
	}}
	points := model.DefaultLaunchPoints()

	require.NoError(t, g.Save(activities, points))

	gotActivities, haveActivities, gotPoints, havePoints, err := g.Load()
	require.NoError(t, err)
	require.True(t, haveActivities)
	require.True(t, havePoints)

	require.Len(t, gotActivities, 1)
	got := gotActivities[0]
	require.Equal(t, activities[0].ID, got.ID)
	require.True(t, got.StartTime.Equal(activities[0].StartTime))
	require.True(t, got.EndTime.Equal(activities[0].EndTime))
	require.Equal(t, 30, got.Duration)
	require.Equal(t, "standup", got.Comment)
	require.Equal(t, "Scheduled", got.LaunchPoint.Label)

	require.Equal(t, points, gotPoints)
}

func TestLoadMalformedValueTreatedAsAbsent(t *testing.T) {
	st := storage.NewMemory()
	require.NoError(t, st.Set(storage.KeyActivities, "{not json"))
	require.NoError(t, st.Set(storage.KeyLaunchPoints, `[{"id":1,"icon":"⚡","label":"Spontaneous"}]`))

	g := New(st)
	activities, haveActivities, points, havePoints, err := g.Load()
	require.NoError(t, err)

	// The broken entry is skipped, the good one still loads.
	require.False(t, haveActivities)
	require.Empty(t, activities)
	require.True(t, havePoints)
	require.Len(t, points, 1)
}

func TestSaveNilCollections(t *testing.T) {
	st := storage.NewMemory()
	g := New(st)

	require.NoError(t, g.Save(nil, nil))

	raw, ok, err := st.Get(storage.KeyActivities)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", raw)
}
