package cafe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
)

func TestClockInCreatesOpenRecord(t *testing.T) {
	f := newFixture(t)
	f.loginAgent(t)

	entry, err := f.cafe.ClockIn()
	require.NoError(t, err)
	assert.Equal(t, "agent1", entry.UserID)
	assert.Equal(t, "Jean Dupont", entry.UserName)
	assert.Equal(t, "2024-03-15", entry.Date)
	assert.Equal(t, f.now, entry.ClockIn)
	assert.True(t, entry.Open())
}

func TestClockInIsIdempotentWhileOpen(t *testing.T) {
	f := newFixture(t)
	f.loginAgent(t)

	first, err := f.cafe.ClockIn()
	require.NoError(t, err)

	f.now = f.now.Add(30 * time.Minute)
	second, err := f.cafe.ClockIn()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ClockIn, second.ClockIn)

	logs, err := f.cafe.TimeLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1, "a second clock-in must not open a second record")
}

func TestClockOutClosesRecordInPlace(t *testing.T) {
	f := newFixture(t)
	f.loginAgent(t)

	opened, err := f.cafe.ClockIn()
	require.NoError(t, err)

	f.now = f.now.Add(8 * time.Hour)
	closed, err := f.cafe.ClockOut()
	require.NoError(t, err)
	assert.Equal(t, opened.ID, closed.ID)
	require.NotNil(t, closed.ClockOut)
	assert.Equal(t, f.now, *closed.ClockOut)

	logs, err := f.cafe.TimeLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.False(t, logs[0].Open())
}

func TestClockOutWithoutOpenRecord(t *testing.T) {
	f := newFixture(t)
	f.loginAgent(t)
	before := len(f.identity.Activities())

	entry, err := f.cafe.ClockOut()
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrNoOpenTimeLog)
	assert.Len(t, f.identity.Activities(), before, "a failed clock-out must not record an activity")
}

func TestClockRequiresSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.cafe.ClockIn()
	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)

	_, err = f.cafe.ClockOut()
	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)
}

// A closed record does not block a later clock-in the same day; only an
// open record does.
func TestSecondSessionSameDay(t *testing.T) {
	f := newFixture(t)
	f.loginAgent(t)

	_, err := f.cafe.ClockIn()
	require.NoError(t, err)
	f.now = f.now.Add(4 * time.Hour)
	_, err = f.cafe.ClockOut()
	require.NoError(t, err)

	f.now = f.now.Add(time.Hour)
	second, err := f.cafe.ClockIn()
	require.NoError(t, err)
	assert.True(t, second.Open())

	logs, err := f.cafe.TimeLogs()
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.False(t, logs[0].Open())
	assert.True(t, logs[1].Open())
	assert.Equal(t, logs[0].Date, logs[1].Date)
}

func TestClocksAreIndependentPerUser(t *testing.T) {
	f := newFixture(t)
	f.loginAgent(t)

	_, err := f.cafe.ClockIn()
	require.NoError(t, err)

	// Marie logs in; Jean's open record must not block her.
	_, err = f.identity.Authenticate("marie@laperle.rouge", "marie123")
	require.NoError(t, err)

	entry, err := f.cafe.ClockIn()
	require.NoError(t, err)
	assert.Equal(t, "agent2", entry.UserID)

	logs, err := f.cafe.TimeLogs()
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
