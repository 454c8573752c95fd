package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, s.SaveSnapshot("k", payload{Name: "trip", Count: 3}))

	var got payload
	found, err := s.LoadSnapshot("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "trip", Count: 3}, got)
}

func TestSnapshotOverwrite(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SaveSnapshot("k", []int{1, 2}))
	require.NoError(t, s.SaveSnapshot("k", []int{3}))

	var got []int
	found, err := s.LoadSnapshot("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{3}, got)
}

func TestLoadSnapshot_Missing(t *testing.T) {
	s := newStore(t)
	var got []int
	found, err := s.LoadSnapshot("nope", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestLoadSnapshot_CorruptPayload(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SaveSnapshot("k", "not a list"))

	var got []int
	_, err := s.LoadSnapshot("k", &got)
	assert.Error(t, err)
}

func TestDeleteSnapshot_Idempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SaveSnapshot("k", 1))
	require.NoError(t, s.DeleteSnapshot("k"))
	require.NoError(t, s.DeleteSnapshot("k"))

	var got int
	found, err := s.LoadSnapshot("k", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot("k", "v"))
	require.NoError(t, s.Close())

	s2, err := New(path)
	require.NoError(t, err)
	defer s2.Close()

	var got string
	found, err := s2.LoadSnapshot("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", got)
}
