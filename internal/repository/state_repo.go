package repository

import (
	"sync"

	"campus_energy"
)

// StateStore is a mutex-guarded in-memory StateRepo.
type StateStore struct {
	mu     sync.RWMutex
	states map[string]campus_energy.EquipmentState
}

func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]campus_energy.EquipmentState)}
}

// Put inserts or atomically replaces the record for st.EquipmentID.
func (s *StateStore) Put(st campus_energy.EquipmentState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[st.EquipmentID] = st
}

func (s *StateStore) Get(id string) (campus_energy.EquipmentState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[id]
	return st, ok
}

// All returns a snapshot copy; callers may not mutate stored state through it.
func (s *StateStore) All() map[string]campus_energy.EquipmentState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]campus_energy.EquipmentState, len(s.states))
	for id, st := range s.states {
		out[id] = st
	}
	return out
}

func (s *StateStore) SetChanging(id string, changing bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[id]
	if !ok {
		return false
	}
	st.IsChanging = changing
	s.states[id] = st
	return true
}
