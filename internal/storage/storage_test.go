package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set("k", "v1"))
	require.NoError(t, m.Set("k", "v2"))

	v, ok, err := m.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v2", v)
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "timeline.db")

	s, err := Open(path)
	require.NoError(t, err)

	_, ok, err := s.Get(KeyActivities)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(KeyActivities, `[{"id":1}]`))
	require.NoError(t, s.Set(KeyActivities, `[{"id":2}]`))

	v, ok, err := s.Get(KeyActivities)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":2}]`, v)

	require.NoError(t, s.Close())

	// Values survive reopening.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err = s.Get(KeyActivities)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":2}]`, v)
}
