package tracker

import (
	"testing"

	"github.com/existflow/timeline/internal/model"
	"github.com/existflow/timeline/internal/storage"
	"github.com/stretchr/testify/require"
)

func newLoaded(t *testing.T) (*Tracker, *storage.Memory) {
	t.Helper()
	st := storage.NewMemory()
	trk := New(st)
	require.NoError(t, trk.Load())
	return trk, st
}

func draft(start string, minutes int, date string) model.Draft {
	return model.Draft{StartClock: start, Duration: &minutes, Date: date}
}

func TestLoadSeedsDefaults(t *testing.T) {
	trk, _ := newLoaded(t)

	require.Empty(t, trk.Activities())
	require.Len(t, trk.LaunchPoints(), 4)
}

func TestNoWritesBeforeLoad(t *testing.T) {
	st := storage.NewMemory()
	trk := New(st)

	// A mutation before Load must not clobber storage with in-memory
	// defaults.
	_, err := trk.CreateLaunchPoint("🧭", "Deep work")
	require.NoError(t, err)

	_, ok, err := st.Get(storage.KeyLaunchPoints)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAddActivityPersists(t *testing.T) {
	trk, st := newLoaded(t)

	a, err := trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)
	require.Equal(t, 30, a.Duration)

	raw, ok, err := st.Get(storage.KeyActivities)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, `"duration":30`)
}

func TestAddActivityFailureDoesNotPersist(t *testing.T) {
	trk, st := newLoaded(t)

	_, err := trk.AddActivity(model.Draft{StartClock: "09:00", Date: "2024-01-01"})
	require.ErrorIs(t, err, model.ErrInsufficientFields)

	_, ok, getErr := st.Get(storage.KeyActivities)
	require.NoError(t, getErr)
	require.False(t, ok)
	require.Empty(t, trk.Activities())
}

func TestLoadExistingState(t *testing.T) {
	trk, st := newLoaded(t)
	_, err := trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)
	require.NoError(t, trk.DeleteLaunchPoint(1))

	// A second process over the same storage sees the same state.
	trk2 := New(st)
	require.NoError(t, trk2.Load())
	require.Len(t, trk2.Activities(), 1)
	require.Len(t, trk2.LaunchPoints(), 3)
}

func TestDeleteLaunchPointKeepsActivityCopy(t *testing.T) {
	trk, _ := newLoaded(t)

	points := trk.LaunchPoints()
	d := draft("09:00", 30, "2024-01-01")
	d.LaunchPoint = &points[0]

	_, err := trk.AddActivity(d)
	require.NoError(t, err)

	require.NoError(t, trk.DeleteLaunchPoint(points[0].ID))
	require.Len(t, trk.LaunchPoints(), 3)

	// Deleting the tag never rewrites history.
	require.Equal(t, "Spontaneous", trk.Activities()[0].LaunchPoint.Label)
}

func TestExportImportRoundTrip(t *testing.T) {
	trk, _ := newLoaded(t)
	_, err := trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)
	_, err = trk.CreateLaunchPoint("🧭", "Deep work")
	require.NoError(t, err)

	name, data, err := trk.ExportData("")
	require.NoError(t, err)
	require.Contains(t, name, "timeline-data-")

	trk2, _ := newLoaded(t)
	require.NoError(t, trk2.Import(data, ""))

	require.Len(t, trk2.Activities(), 1)
	require.Len(t, trk2.LaunchPoints(), 5)
	require.Equal(t, trk.Activities()[0].ID, trk2.Activities()[0].ID)
}

func TestSealedExportImport(t *testing.T) {
	trk, _ := newLoaded(t)
	_, err := trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)

	name, data, err := trk.ExportData("hunter2")
	require.NoError(t, err)
	require.Contains(t, name, ".enc")

	trk2, _ := newLoaded(t)
	require.ErrorIs(t, trk2.Import(data, "wrong"), model.ErrImport)
	require.Empty(t, trk2.Activities())

	require.NoError(t, trk2.Import(data, "hunter2"))
	require.Len(t, trk2.Activities(), 1)
}

func TestImportFailureLeavesStateUntouched(t *testing.T) {
	trk, _ := newLoaded(t)
	_, err := trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)

	cases := [][]byte{
		[]byte("{not json"),
		[]byte(`{"activities":[]}`),
		[]byte(`{"activities":null,"launchPoints":[]}`),
	}
	for _, data := range cases {
		err := trk.Import(data, "")
		require.ErrorIs(t, err, model.ErrImport)
		require.Len(t, trk.Activities(), 1)
		require.Len(t, trk.LaunchPoints(), 4)
	}
}

func TestImportReplacesEverything(t *testing.T) {
	trk, _ := newLoaded(t)
	_, err := trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)

	doc := []byte(`{"activities":[],"launchPoints":[{"id":9,"icon":"🌙","label":"Late night"}]}`)
	require.NoError(t, trk.Import(doc, ""))

	require.Empty(t, trk.Activities())
	points := trk.LaunchPoints()
	require.Len(t, points, 1)
	require.Equal(t, "Late night", points[0].Label)
}

func TestClearResetsToDefaults(t *testing.T) {
	trk, _ := newLoaded(t)
	_, err := trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)
	require.NoError(t, trk.DeleteLaunchPoint(1))

	require.NoError(t, trk.Clear())
	require.Empty(t, trk.Activities())
	require.Len(t, trk.LaunchPoints(), 4)
}

func TestActivitiesOn(t *testing.T) {
	trk, _ := newLoaded(t)
	_, err := trk.AddActivity(draft("14:00", 30, "2024-01-01"))
	require.NoError(t, err)
	_, err = trk.AddActivity(draft("09:00", 30, "2024-01-01"))
	require.NoError(t, err)
	_, err = trk.AddActivity(draft("09:00", 30, "2024-01-02"))
	require.NoError(t, err)

	got := trk.ActivitiesOn("2024-01-01")
	require.Len(t, got, 2)
	require.True(t, got[0].StartTime.Before(got[1].StartTime))
}
