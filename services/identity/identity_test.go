package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
	"github.com/hamzadaoud/rouge-perle-gestion/store"
)

func newTestService() (*store.MemoryStore, *Service) {
	s := store.NewMemoryStore()
	svc := New(s)
	svc.SetClock(func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	})
	return s, svc
}

func TestAuthenticateRoster(t *testing.T) {
	cases := []struct {
		email, password string
		wantID          string
		wantRole        models.UserRole
	}{
		{"admin@laperle.rouge", "admin123", "admin1", models.RoleAdmin},
		{"jean@laperle.rouge", "jean123", "agent1", models.RoleAgent},
		{"marie@laperle.rouge", "marie123", "agent2", models.RoleAgent},
	}

	for _, tc := range cases {
		_, svc := newTestService()
		user, err := svc.Authenticate(tc.email, tc.password)
		require.NoError(t, err, tc.email)
		assert.Equal(t, tc.wantID, user.ID)
		assert.Equal(t, tc.wantRole, user.Role)

		current := svc.CurrentUser()
		require.NotNil(t, current)
		assert.Equal(t, tc.wantID, current.ID)
	}
}

func TestAuthenticateFailureLeavesSessionUntouched(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Authenticate("jean@laperle.rouge", "jean123")
	require.NoError(t, err)

	for _, attempt := range [][2]string{
		{"jean@laperle.rouge", "wrong"},
		{"nobody@laperle.rouge", "whatever"},
		{"", ""},
	} {
		user, err := svc.Authenticate(attempt[0], attempt[1])
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	current := svc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "agent1", current.ID)
}

func TestAuthenticateRecordsLoginAudit(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Authenticate("marie@laperle.rouge", "marie123")
	require.NoError(t, err)

	logins := svc.LoginActivities()
	require.Len(t, logins, 1)
	assert.Equal(t, "agent2", logins[0].UserID)
	assert.Equal(t, "Marie Martin", logins[0].UserName)
	assert.Equal(t, "2024-03-15", logins[0].Date)

	activities := svc.Activities()
	require.Len(t, activities, 1)
	assert.Equal(t, "S'est connecté", activities[0].Action)
}

func TestCurrentUserCorruptSnapshot(t *testing.T) {
	s, svc := newTestService()

	s.SetRaw(store.KeyCurrentUser, []byte("{corrupt"))
	assert.Nil(t, svc.CurrentUser())
}

func TestCurrentUserAbsent(t *testing.T) {
	_, svc := newTestService()
	assert.Nil(t, svc.CurrentUser())
}

func TestLogout(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Authenticate("jean@laperle.rouge", "jean123")
	require.NoError(t, err)
	require.NotNil(t, svc.CurrentUser())

	require.NoError(t, svc.Logout())
	assert.Nil(t, svc.CurrentUser())
}

func TestIsAdmin(t *testing.T) {
	_, svc := newTestService()

	assert.False(t, svc.IsAdmin())

	_, err := svc.Authenticate("jean@laperle.rouge", "jean123")
	require.NoError(t, err)
	assert.False(t, svc.IsAdmin())

	_, err = svc.Authenticate("admin@laperle.rouge", "admin123")
	require.NoError(t, err)
	assert.True(t, svc.IsAdmin())
}

func TestRegisterActivityWithoutSession(t *testing.T) {
	_, svc := newTestService()

	svc.RegisterActivity("should be dropped")
	assert.Empty(t, svc.Activities())
}

func TestRegisterActivityAttribution(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Authenticate("jean@laperle.rouge", "jean123")
	require.NoError(t, err)

	svc.RegisterActivity("A créé une commande de 6.00€")

	activities := svc.Activities()
	require.Len(t, activities, 2)
	last := activities[len(activities)-1]
	assert.Equal(t, "agent1", last.UserID)
	assert.Equal(t, "Jean Dupont", last.UserName)
	assert.Equal(t, "A créé une commande de 6.00€", last.Action)
}

func TestUsersReturnsCopy(t *testing.T) {
	_, svc := newTestService()

	users := svc.Users()
	require.Len(t, users, 3)
	users[0].Name = "mutated"

	again := svc.Users()
	assert.Equal(t, "Administrateur", again[0].Name)
}
