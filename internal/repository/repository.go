package repository

import (
	"time"

	"campus_energy"
)

// StateRepo holds the runtime record of every controllable equipment id.
type StateRepo interface {
	Put(st campus_energy.EquipmentState)
	Get(id string) (campus_energy.EquipmentState, bool)
	All() map[string]campus_energy.EquipmentState
	// SetChanging flips the in-flight flag; reports false for unknown ids.
	SetChanging(id string, changing bool) bool
}

// HistoryRepo is the append-only status-change log, newest first.
type HistoryRepo interface {
	Append(c campus_energy.StatusChange)
	// ListSince returns changes for equipmentID with Timestamp >= cutoff,
	// newest first.
	ListSince(equipmentID string, cutoff time.Time) []campus_energy.StatusChange
}

// AlertRepo is the append-only alert log, newest first. Acknowledgement is
// the only mutation.
type AlertRepo interface {
	Append(a campus_energy.Alert)
	List() []campus_energy.Alert
	Acknowledge(id string) bool
}

// Repository aggregates the stores. Everything lives in memory for the
// process lifetime.
type Repository struct {
	States  StateRepo
	History HistoryRepo
	Alerts  AlertRepo
}

func NewRepository() *Repository {
	return &Repository{
		States:  NewStateStore(),
		History: NewHistoryStore(),
		Alerts:  NewAlertStore(),
	}
}
