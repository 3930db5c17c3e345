package store

import (
	"errors"
	"testing"

	"github.com/existflow/timeline/internal/model"
	"github.com/stretchr/testify/require"
)

func TestLaunchPointSeeds(t *testing.T) {
	s := NewLaunchPointStore()

	points := s.All()
	require.Len(t, points, 4)
	require.Equal(t, "Spontaneous", points[0].Label)
	require.Equal(t, "⚡", points[0].Icon)
	require.Equal(t, "Scheduled", points[3].Label)
}

func TestCreateMissingField(t *testing.T) {
	s := NewLaunchPointStore()

	cases := [][2]string{
		{"", "Label"},
		{"🧭", ""},
		{"   ", "Label"},
		{"🧭", "  "},
	}
	for _, c := range cases {
		_, err := s.Create(c[0], c[1])
		if !errors.Is(err, model.ErrMissingField) {
			t.Fatalf("Create(%q, %q): expected ErrMissingField, got %v", c[0], c[1], err)
		}
	}
	require.Equal(t, 4, s.Len())
}

func TestCreateAppends(t *testing.T) {
	s := NewLaunchPointStore()

	lp, err := s.Create("🧭", "Deep work")
	require.NoError(t, err)
	require.Equal(t, "Deep work", lp.Label)
	require.Greater(t, lp.ID, int64(4))
	require.Equal(t, 5, s.Len())
	require.Equal(t, lp, s.All()[4])
}

func TestDeleteByID(t *testing.T) {
	s := NewLaunchPointStore()

	s.DeleteByID(2)
	require.Equal(t, 3, s.Len())
	for _, lp := range s.All() {
		require.NotEqual(t, int64(2), lp.ID)
	}

	// Unknown id is a no-op.
	s.DeleteByID(9999)
	require.Equal(t, 3, s.Len())
}

func TestLaunchPointReplaceAll(t *testing.T) {
	s := NewLaunchPointStore()
	s.ReplaceAll([]model.LaunchPoint{{ID: 100, Icon: "🌙", Label: "Late night"}})

	require.Equal(t, 1, s.Len())

	// Id issuance keeps clearing the imported maximum.
	lp, err := s.Create("🌅", "Early morning")
	require.NoError(t, err)
	require.Greater(t, lp.ID, int64(100))
}
