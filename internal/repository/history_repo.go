package repository

import (
	"sync"
	"time"

	"campus_energy"
)

// HistoryStore is a mutex-guarded in-memory HistoryRepo. New entries are
// prepended so reads come back newest first without sorting.
type HistoryStore struct {
	mu      sync.RWMutex
	changes []campus_energy.StatusChange
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

func (s *HistoryStore) Append(c campus_energy.StatusChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changes = append([]campus_energy.StatusChange{c}, s.changes...)
}

func (s *HistoryStore) ListSince(equipmentID string, cutoff time.Time) []campus_energy.StatusChange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]campus_energy.StatusChange, 0)
	for _, c := range s.changes {
		if c.EquipmentID == equipmentID && !c.Timestamp.Before(cutoff) {
			out = append(out, c)
		}
	}
	return out
}
