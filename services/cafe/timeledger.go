package cafe

import (
	"github.com/hamzadaoud/rouge-perle-gestion/models"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
	"github.com/hamzadaoud/rouge-perle-gestion/store"
)

func (s *Service) loadTimeLogs() ([]models.TimeLog, error) {
	if err := s.ensureSeed(); err != nil {
		return nil, err
	}
	var logs []models.TimeLog
	if _, err := s.store.Get(store.KeyTimeLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// TimeLogs returns the full time ledger, oldest first.
func (s *Service) TimeLogs() ([]models.TimeLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTimeLogs()
}

// ClockIn opens a work session for the current user. While an open
// record exists for today the call is an idempotent no-op returning
// that record. A closed record does not block a later clock-in the
// same day, so several pairs per day are possible.
func (s *Service) ClockIn() (*models.TimeLog, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return nil, identity.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := dayOf(now)

	logs, err := s.loadTimeLogs()
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].UserID == user.ID && logs[i].Date == today && logs[i].Open() {
			existing := logs[i]
			return &existing, nil
		}
	}

	entry := models.TimeLog{
		ID:       newID("log"),
		UserID:   user.ID,
		UserName: user.Name,
		ClockIn:  now,
		Date:     today,
	}
	logs = append(logs, entry)
	if err := s.store.Set(store.KeyTimeLogs, logs); err != nil {
		return nil, err
	}
	s.identity.RegisterActivity("A pointé son arrivée")
	return &entry, nil
}

// ClockOut closes today's open record in place. With no open record it
// returns ErrNoOpenTimeLog and records nothing.
func (s *Service) ClockOut() (*models.TimeLog, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return nil, identity.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := dayOf(now)

	logs, err := s.loadTimeLogs()
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].UserID == user.ID && logs[i].Date == today && logs[i].Open() {
			out := now
			logs[i].ClockOut = &out
			if err := s.store.Set(store.KeyTimeLogs, logs); err != nil {
				return nil, err
			}
			s.identity.RegisterActivity("A pointé son départ")
			closed := logs[i]
			return &closed, nil
		}
	}
	return nil, ErrNoOpenTimeLog
}
