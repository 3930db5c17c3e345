package store

import (
	"errors"
	"testing"
	"time"

	"github.com/existflow/timeline/internal/model"
	"github.com/stretchr/testify/require"
)

func activityAt(id int64, date string, hour, minute, duration int) model.Activity {
	y, m, d := mustDate(date)
	start := time.Date(y, m, d, hour, minute, 0, 0, time.Local)
	return model.Activity{
		ID:        id,
		StartTime: start,
		EndTime:   start.Add(time.Duration(duration) * time.Minute),
		Duration:  duration,
		Color:     model.DefaultColor,
		Date:      date,
	}
}

func mustDate(date string) (int, time.Month, int) {
	t, err := time.ParseInLocation(model.DateLayout, date, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Year(), t.Month(), t.Day()
}

func TestAddAppends(t *testing.T) {
	s := NewActivityStore()

	minutes := 30
	a, err := s.Add(model.Draft{StartClock: "09:00", Duration: &minutes, Date: "2024-01-01"})
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.NotZero(t, a.ID)
}

func TestAddFailureLeavesStoreUnchanged(t *testing.T) {
	s := NewActivityStore()

	_, err := s.Add(model.Draft{StartClock: "09:00", Date: "2024-01-01"})
	if !errors.Is(err, model.ErrInsufficientFields) {
		t.Fatalf("expected ErrInsufficientFields, got %v", err)
	}
	require.Equal(t, 0, s.Len())
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s := NewActivityStore()

	minutes := 10
	seen := make(map[int64]bool)
	var last int64
	for i := 0; i < 20; i++ {
		a, err := s.Add(model.Draft{StartClock: "09:00", Duration: &minutes, Date: "2024-01-01"})
		require.NoError(t, err)
		if seen[a.ID] {
			t.Fatalf("duplicate id %d", a.ID)
		}
		if a.ID <= last {
			t.Fatalf("ids not increasing: %d after %d", a.ID, last)
		}
		seen[a.ID] = true
		last = a.ID
	}
}

func TestFilterByDateBounds(t *testing.T) {
	s := NewActivityStore()
	s.ReplaceAll([]model.Activity{
		activityAt(1, "2024-01-01", 0, 0, 15),  // first minute of the day
		activityAt(2, "2024-01-01", 23, 59, 5), // last minute of the day
		activityAt(3, "2023-12-31", 23, 58, 5), // prior day, near midnight
		activityAt(4, "2024-01-02", 0, 1, 5),   // next day, near midnight
	})

	got := s.FilterByDate("2024-01-01")
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(2), got[1].ID)
}

func TestFilterByDateChronological(t *testing.T) {
	s := NewActivityStore()
	// Inserted out of order on purpose.
	s.ReplaceAll([]model.Activity{
		activityAt(1, "2024-01-01", 14, 0, 30),
		activityAt(2, "2024-01-01", 9, 0, 30),
		activityAt(3, "2024-01-01", 11, 30, 30),
	})

	got := s.FilterByDate("2024-01-01")
	require.Len(t, got, 3)
	require.Equal(t, int64(2), got[0].ID)
	require.Equal(t, int64(3), got[1].ID)
	require.Equal(t, int64(1), got[2].ID)
}

func TestFilterByDateBadDate(t *testing.T) {
	s := NewActivityStore()
	s.ReplaceAll([]model.Activity{activityAt(1, "2024-01-01", 9, 0, 30)})
	require.Empty(t, s.FilterByDate("nonsense"))
}

func TestReplaceAll(t *testing.T) {
	s := NewActivityStore()
	s.ReplaceAll([]model.Activity{
		activityAt(10, "2024-01-01", 9, 0, 30),
		activityAt(11, "2024-01-01", 10, 0, 30),
	})
	require.Equal(t, 2, s.Len())

	s.ReplaceAll(nil)
	require.Equal(t, 0, s.Len())
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewActivityStore()
	s.ReplaceAll([]model.Activity{activityAt(1, "2024-01-01", 9, 0, 30)})

	out := s.All()
	out[0].Comment = "mutated"
	require.Empty(t, s.All()[0].Comment)
}
