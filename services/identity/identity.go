// Package identity resolves credentials against the fixed staff roster
// and owns the session snapshot plus the activity audit trail.
package identity

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
	"github.com/hamzadaoud/rouge-perle-gestion/store"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated is returned by operations that need a session
	// when none is active.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// defaultUsers is the static roster. Users are never created or
// destroyed at runtime.
var defaultUsers = []models.User{
	{ID: "admin1", Email: "admin@laperle.rouge", Name: "Administrateur", Role: models.RoleAdmin},
	{ID: "agent1", Email: "jean@laperle.rouge", Name: "Jean Dupont", Role: models.RoleAgent},
	{ID: "agent2", Email: "marie@laperle.rouge", Name: "Marie Martin", Role: models.RoleAgent},
}

// defaultPasswords maps email to plaintext password. Held in process
// memory only, compared once at login, never persisted.
var defaultPasswords = map[string]string{
	"admin@laperle.rouge": "admin123",
	"jean@laperle.rouge":  "jean123",
	"marie@laperle.rouge": "marie123",
}

// Service authenticates staff and records their activity. All state
// lives in the injected store; the roster itself is immutable.
type Service struct {
	mu        sync.Mutex
	store     store.Store
	users     []models.User
	passwords map[string]string
	now       func() time.Time
}

func New(s store.Store) *Service {
	return NewWithRoster(s, defaultUsers, defaultPasswords)
}

// NewWithRoster injects a custom credential table, keeping the
// email-then-password contract identical for test doubles.
func NewWithRoster(s store.Store, users []models.User, passwords map[string]string) *Service {
	return &Service{
		store:     s,
		users:     users,
		passwords: passwords,
		now:       time.Now,
	}
}

// SetClock overrides the time source. Tests only.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Authenticate resolves email+password against the roster. On success
// it persists the user as the current session and appends a login audit
// entry; on failure it returns ErrInvalidCredentials and leaves any
// prior session untouched.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	var match *models.User
	for i := range s.users {
		if s.users[i].Email == email {
			match = &s.users[i]
			break
		}
	}
	if match == nil || s.passwords[email] != password {
		return nil, ErrInvalidCredentials
	}

	user := *match
	if err := s.store.Set(store.KeyCurrentUser, user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var logins []models.LoginActivity
	if _, err := s.store.Get(store.KeyLoginActivities, &logins); err != nil {
		return nil, err
	}
	logins = append(logins, models.LoginActivity{
		ID:        newID("login"),
		UserID:    user.ID,
		UserName:  user.Name,
		LoginTime: now,
		Date:      dayOf(now),
	})
	if err := s.store.Set(store.KeyLoginActivities, logins); err != nil {
		return nil, err
	}

	if err := s.appendActivity(user, "S'est connecté"); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser reads the session snapshot. A missing or corrupt snapshot
// means no session, never an error.
func (s *Service) CurrentUser() *models.User {
	var user models.User
	found, err := s.store.Get(store.KeyCurrentUser, &user)
	if err != nil || !found || user.ID == "" {
		return nil
	}
	return &user
}

func (s *Service) Logout() error {
	return s.store.Delete(store.KeyCurrentUser)
}

func (s *Service) IsAdmin() bool {
	return s.CurrentUser().IsAdmin()
}

// Users returns a copy of the roster, for the staff listing.
func (s *Service) Users() []models.User {
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

// RegisterActivity appends an audit entry attributed to the current
// user. Without a session the entry is silently dropped.
func (s *Service) RegisterActivity(action string) {
	user := s.CurrentUser()
	if user == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.appendActivity(*user, action)
}

func (s *Service) appendActivity(user models.User, action string) error {
	var activities []models.Activity
	if _, err := s.store.Get(store.KeyActivities, &activities); err != nil {
		return err
	}
	activities = append(activities, models.Activity{
		ID:        newID("act"),
		UserID:    user.ID,
		UserName:  user.Name,
		Action:    action,
		Timestamp: s.now(),
	})
	return s.store.Set(store.KeyActivities, activities)
}

// Activities returns the generic audit trail, oldest first.
func (s *Service) Activities() []models.Activity {
	var activities []models.Activity
	if _, err := s.store.Get(store.KeyActivities, &activities); err != nil {
		return nil
	}
	return activities
}

// LoginActivities returns the login audit trail, oldest first.
func (s *Service) LoginActivities() []models.LoginActivity {
	var logins []models.LoginActivity
	if _, err := s.store.Get(store.KeyLoginActivities, &logins); err != nil {
		return nil
	}
	return logins
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// dayOf truncates a timestamp to its UTC calendar day.
func dayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
