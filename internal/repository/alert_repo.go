package repository

import (
	"sync"

	"campus_energy"
)

// AlertStore is a mutex-guarded in-memory AlertRepo, newest first.
type AlertStore struct {
	mu     sync.RWMutex
	alerts []campus_energy.Alert
}

func NewAlertStore() *AlertStore {
	return &AlertStore{}
}

func (s *AlertStore) Append(a campus_energy.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append([]campus_energy.Alert{a}, s.alerts...)
}

func (s *AlertStore) List() []campus_energy.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]campus_energy.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Acknowledge flips the acknowledged flag; no-op (false) when id is unknown.
func (s *AlertStore) Acknowledge(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Acknowledged = true
			return true
		}
	}
	return false
}
