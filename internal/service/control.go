package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"campus_energy"
	"campus_energy/internal/catalog"
	"campus_energy/internal/metrics"
	"campus_energy/internal/repository"

	"github.com/google/uuid"
)

const (
	// defaultActorID stands in for an authenticated operator; auth is out
	// of scope for this deployment.
	defaultActorID = "energy_manager"

	// Solar arrays may not be switched off inside this window.
	peakGenerationStartHour = 10
	peakGenerationEndHour   = 16
)

// ControlService implements Control over the in-memory stores. Every
// controllable equipment id starts ON with its nominal profile figures.
type ControlService struct {
	cat     *catalog.Catalog
	states  repository.StateRepo
	history repository.HistoryRepo
	alerts  repository.AlertRepo
	delay   time.Duration
	now     func() time.Time

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewControlService(cat *catalog.Catalog, repos *repository.Repository, delay time.Duration) *ControlService {
	s := &ControlService{
		cat:      cat,
		states:   repos.States,
		history:  repos.History,
		alerts:   repos.Alerts,
		delay:    delay,
		now:      time.Now,
		inFlight: make(map[string]bool),
	}
	for _, spec := range cat.ControlSpecs {
		s.states.Put(campus_energy.EquipmentState{
			EquipmentID:   spec.ID,
			Status:        campus_energy.StatusOn,
			ConsumptionKW: spec.Profile.OnConsumptionKW,
			GenerationKW:  spec.Profile.OnGenerationKW,
			LastUpdate:    s.now(),
		})
	}
	return s
}

// IsChangeAllowed is a pure query: it evaluates every conflict source
// against "now" and never mutates state. An empty conflict list means the
// change may proceed.
func (s *ControlService) IsChangeAllowed(equipmentID string, target campus_energy.EquipmentStatus) Decision {
	now := s.now()
	d := Decision{}

	for _, op := range s.cat.ScheduledOps {
		if op.EquipmentID != equipmentID {
			continue
		}
		if !now.Before(op.StartTime) && !now.After(op.EndTime) {
			d.Conflicts = append(d.Conflicts,
				fmt.Sprintf("Scheduled %s in progress until %s", op.Operation, op.EndTime.Format("15:04:05")))
			if d.ConflictType == "" {
				d.ConflictType = campus_energy.ConflictScheduledOperation
			}
		}
	}

	spec, hasSpec := s.cat.ControlSpecByID(equipmentID)
	if hasSpec && spec.Maintenance.NextMaintenance.Before(now) {
		d.Conflicts = append(d.Conflicts, "Equipment maintenance is overdue")
		if d.ConflictType == "" {
			d.ConflictType = campus_energy.ConflictMaintenanceDue
		}
	}

	if hasSpec && target == campus_energy.StatusOff && spec.Type == campus_energy.TypeSolar {
		hour := now.Hour()
		if hour >= peakGenerationStartHour && hour <= peakGenerationEndHour {
			d.Conflicts = append(d.Conflicts,
				"Turning off solar during peak generation hours may impact energy optimization")
			if d.ConflictType == "" {
				d.ConflictType = campus_energy.ConflictEnergyOptimization
			}
		}
	}

	d.Allowed = len(d.Conflicts) == 0
	return d
}

// ChangeStatus drives the state machine for one equipment id. The happy
// path marks the record in-flight, waits out the simulated round-trip, then
// atomically commits the new status with its profile-derived power figures,
// appends a history record and raises an INFO alert. Conflicted requests
// raise a WARNING alert and leave the runtime record untouched. Unknown ids
// and concurrent requests for the same id report false without alerting.
func (s *ControlService) ChangeStatus(ctx context.Context, equipmentID string, target campus_energy.EquipmentStatus, reason string) bool {
	prev, ok := s.states.Get(equipmentID)
	if !ok {
		metrics.StatusChanges.WithLabelValues("rejected").Inc()
		return false
	}
	spec, ok := s.cat.ControlSpecByID(equipmentID)
	if !ok {
		metrics.StatusChanges.WithLabelValues("rejected").Inc()
		return false
	}

	if d := s.IsChangeAllowed(equipmentID, target); !d.Allowed {
		s.appendAlert(campus_energy.Alert{
			Severity:     campus_energy.SeverityWarning,
			Message:      "Status change blocked: " + strings.Join(d.Conflicts, ", "),
			EquipmentID:  equipmentID,
			ConflictType: d.ConflictType,
		})
		metrics.StatusChanges.WithLabelValues("blocked").Inc()
		return false
	}

	if !s.acquire(equipmentID) {
		// a change for this equipment is already in flight
		metrics.StatusChanges.WithLabelValues("rejected").Inc()
		return false
	}
	defer s.release(equipmentID)

	s.states.SetChanging(equipmentID, true)

	// Simulated control-network round trip.
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		s.states.SetChanging(equipmentID, false)
		metrics.StatusChanges.WithLabelValues("rejected").Inc()
		return false
	}

	consumption, generation := profileFigures(spec.Profile, target)
	now := s.now()

	s.states.Put(campus_energy.EquipmentState{
		EquipmentID:   equipmentID,
		Status:        target,
		ConsumptionKW: consumption,
		GenerationKW:  generation,
		LastUpdate:    now,
	})

	s.history.Append(campus_energy.StatusChange{
		ID:             uuid.NewString(),
		EquipmentID:    equipmentID,
		EquipmentType:  spec.Type,
		PreviousStatus: prev.Status,
		NewStatus:      target,
		Timestamp:      now,
		ActorID:        defaultActorID,
		Reason:         reason,
		EnergyImpact: campus_energy.EnergyImpact{
			PreviousConsumptionKW: prev.ConsumptionKW,
			NewConsumptionKW:      consumption,
			PreviousGenerationKW:  prev.GenerationKW,
			NewGenerationKW:       generation,
		},
	})

	s.appendAlert(campus_energy.Alert{
		Severity:    campus_energy.SeverityInfo,
		Message:     fmt.Sprintf("%s status changed to %s", spec.Name, target),
		EquipmentID: equipmentID,
	})
	metrics.StatusChanges.WithLabelValues("applied").Inc()
	return true
}

func (s *ControlService) AcknowledgeAlert(alertID string) bool {
	return s.alerts.Acknowledge(alertID)
}

// History returns this equipment's status changes newer than now − days,
// newest first.
func (s *ControlService) History(equipmentID string, days int) []campus_energy.StatusChange {
	cutoff := s.now().AddDate(0, 0, -days)
	return s.history.ListSince(equipmentID, cutoff)
}

func (s *ControlService) States() map[string]campus_energy.EquipmentState {
	return s.states.All()
}

func (s *ControlService) Alerts() []campus_energy.Alert {
	return s.alerts.List()
}

// acquire marks equipmentID as having a change in flight. Reports false if
// one already is, serializing ChangeStatus per equipment.
func (s *ControlService) acquire(equipmentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[equipmentID] {
		return false
	}
	s.inFlight[equipmentID] = true
	return true
}

func (s *ControlService) release(equipmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, equipmentID)
}

func (s *ControlService) appendAlert(a campus_energy.Alert) {
	a.ID = uuid.NewString()
	a.Timestamp = s.now()
	s.alerts.Append(a)
	metrics.AlertsRaised.WithLabelValues(string(a.Severity)).Inc()
}

// profileFigures maps a target status to its fixed power figures. OFF and
// MAINTENANCE force both figures to zero.
func profileFigures(p catalog.EnergyProfile, target campus_energy.EquipmentStatus) (consumption, generation float64) {
	switch target {
	case campus_energy.StatusOn:
		return p.OnConsumptionKW, p.OnGenerationKW
	case campus_energy.StatusStandby:
		return p.StandbyConsumptionKW, p.StandbyGenerationKW
	default: // OFF, MAINTENANCE
		return 0, 0
	}
}
