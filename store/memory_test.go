package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("drinks", []string{"a", "b"}))

	var got []string
	found, err := s.Get("drinks", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMemoryStoreAbsentKey(t *testing.T) {
	s := NewMemoryStore()

	var got []string
	found, err := s.Get("orders", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("currentUser", map[string]string{"id": "agent1"}))
	require.NoError(t, s.Delete("currentUser"))

	var got map[string]string
	found, err := s.Get("currentUser", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreCorruptValueIsAbsent(t *testing.T) {
	s := NewMemoryStore()
	s.SetRaw("drinks", []byte("{not json"))

	var got []string
	found, err := s.Get("drinks", &got)
	require.NoError(t, err)
	assert.False(t, found, "corrupt value must read as absent, not as an error")

	// The raw bytes are still there; only decoding treats them as absent.
	raw, found, err := s.Raw("drinks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("{not json"), raw)
}

func TestMemoryStoreRawCopies(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set("drinks", []int{1}))

	raw, found, err := s.Raw("drinks")
	require.NoError(t, err)
	require.True(t, found)
	raw[0] = 'X'

	again, _, _ := s.Raw("drinks")
	assert.NotEqual(t, raw[0], again[0])
}
